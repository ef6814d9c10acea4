// Package keymap provides key binding definitions and lookup for the filter
// drawer. Bindings are declarative and grouped by drawer mode, so the panel's
// Update method only maps a key to a Command and dispatches on that.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Mode represents the current input mode of the drawer.
// Different modes have different key bindings active.
type Mode string

const (
	ModeClosed Mode = "closed" // Drawer hidden, only the entry button is shown
	ModeOpen   Mode = "open"   // Drawer visible, navigating options
	ModeFind   Mode = "find"   // Typing an option find pattern (after /)
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Closed mode commands
const (
	CmdOpenDrawer Command = "open_drawer"
	CmdQuit       Command = "quit"
)

// Open mode commands
const (
	CmdCloseDrawer  Command = "close_drawer"
	CmdCursorDown   Command = "cursor_down"
	CmdCursorUp     Command = "cursor_up"
	CmdNextCategory Command = "next_category"
	CmdPrevCategory Command = "prev_category"
	CmdToggleOption Command = "toggle_option"
	CmdApply        Command = "apply"
	CmdClearAll     Command = "clear_all"
	CmdStartFind    Command = "start_find"
)

// Find mode commands
const (
	CmdCancelFind  Command = "cancel_find"
	CmdConfirmFind Command = "confirm_find"
	CmdFindNext    Command = "find_next"
	CmdFindPrev    Command = "find_prev"
)

// Modifier represents keyboard modifiers.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << iota
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m&ModAlt != 0 {
		return "alt+"
	}
	return ""
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding.
	// For rune keys, use tea.KeyRunes and set the Rune field.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()
	switch {
	case kb.KeyType == tea.KeySpace:
		return prefix + "space"
	case kb.KeyType != tea.KeyRunes:
		return prefix + kb.KeyType.String()
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// HelpEntry is one key/description pair for the help bar.
type HelpEntry struct {
	Keys        string
	Description string
}

// Help returns one entry per command in a mode, in binding order, with all
// keys for the command joined by "/". Bindings without a description are
// folded into an earlier entry for the same command, or omitted.
func (km *Keymap) Help(mode Mode) []HelpEntry {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	index := make(map[Command]int)
	var entries []HelpEntry
	for _, binding := range mb.Bindings {
		if i, seen := index[binding.Command]; seen {
			entries[i].Keys += "/" + binding.String()
			continue
		}
		if binding.Description == "" {
			continue
		}
		index[binding.Command] = len(entries)
		entries = append(entries, HelpEntry{Keys: binding.String(), Description: binding.Description})
	}
	return entries
}
