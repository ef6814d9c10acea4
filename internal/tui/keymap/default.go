package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default drawer key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default filter drawer key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeClosed: defaultClosedBindings(),
			ModeOpen:   defaultOpenBindings(),
			ModeFind:   defaultFindBindings(),
		},
	}
}

func defaultClosedBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeClosed,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdOpenDrawer, Description: "filters", Category: "Drawer"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit", Category: "Exit"},
		},
	}
}

func defaultOpenBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeOpen,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Category: "Navigation"},
			{KeyType: tea.KeyTab, Command: CmdNextCategory, Description: "next group", Category: "Navigation"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevCategory, Description: "prev group", Category: "Navigation"},

			{KeyType: tea.KeySpace, Command: CmdToggleOption, Description: "toggle", Category: "Selection"},
			{KeyType: tea.KeyEnter, Command: CmdToggleOption, Description: "toggle", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdClearAll, Description: "clear all", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdStartFind, Description: "find", Category: "Selection"},

			{KeyType: tea.KeyRunes, Rune: 'a', Command: CmdApply, Description: "apply", Category: "Drawer"},
			{KeyType: tea.KeyEsc, Command: CmdCloseDrawer, Description: "close", Category: "Drawer"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdCloseDrawer, Description: "close", Category: "Drawer"},
		},
	}
}

func defaultFindBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeFind,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirmFind, Description: "jump", Category: "Find"},
			{KeyType: tea.KeyDown, Command: CmdFindNext, Description: "next match", Category: "Find"},
			{KeyType: tea.KeyCtrlN, Command: CmdFindNext, Category: "Find"},
			{KeyType: tea.KeyUp, Command: CmdFindPrev, Description: "prev match", Category: "Find"},
			{KeyType: tea.KeyCtrlP, Command: CmdFindPrev, Category: "Find"},
			{KeyType: tea.KeyEsc, Command: CmdCancelFind, Description: "cancel", Category: "Find"},
		},
	}
}
