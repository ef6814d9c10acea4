package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{
			name:     "simple rune match",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
			expected: true,
		},
		{
			name:     "simple rune mismatch",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}},
			expected: false,
		},
		{
			name:     "special key match",
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			msg:      tea.KeyMsg{Type: tea.KeyEnter},
			expected: true,
		},
		{
			name:     "special key mismatch",
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			msg:      tea.KeyMsg{Type: tea.KeyEsc},
			expected: false,
		},
		{
			name:     "rune binding ignores special key",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			msg:      tea.KeyMsg{Type: tea.KeyDown},
			expected: false,
		},
		{
			name:     "alt modifier match",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			expected: true,
		},
		{
			name:     "unexpected alt",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			expected: false,
		},
		{
			name:     "empty runes",
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x'},
			msg:      tea.KeyMsg{Type: tea.KeyRunes},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.expected {
				t.Errorf("Matches() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'f'}, "f"},
		{KeyBinding{KeyType: tea.KeyEsc}, "esc"},
		{KeyBinding{KeyType: tea.KeySpace}, "space"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt}, "alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.binding.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		mode Mode
		msg  tea.KeyMsg
		want Command
	}{
		{"f opens", ModeClosed, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}, CmdOpenDrawer},
		{"q quits when closed", ModeClosed, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, CmdQuit},
		{"q closes when open", ModeOpen, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, CmdCloseDrawer},
		{"esc closes", ModeOpen, tea.KeyMsg{Type: tea.KeyEsc}, CmdCloseDrawer},
		{"j moves down", ModeOpen, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, CmdCursorDown},
		{"up moves up", ModeOpen, tea.KeyMsg{Type: tea.KeyUp}, CmdCursorUp},
		{"tab jumps", ModeOpen, tea.KeyMsg{Type: tea.KeyTab}, CmdNextCategory},
		{"space toggles", ModeOpen, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, CmdToggleOption},
		{"enter toggles", ModeOpen, tea.KeyMsg{Type: tea.KeyEnter}, CmdToggleOption},
		{"a applies", ModeOpen, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, CmdApply},
		{"c clears", ModeOpen, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}, CmdClearAll},
		{"slash finds", ModeOpen, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, CmdStartFind},
		{"enter confirms find", ModeFind, tea.KeyMsg{Type: tea.KeyEnter}, CmdConfirmFind},
		{"esc cancels find", ModeFind, tea.KeyMsg{Type: tea.KeyEsc}, CmdCancelFind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.GetBinding(tt.msg, tt.mode)
			if !ok || got != tt.want {
				t.Errorf("GetBinding() = %q, %v, want %q", got, ok, tt.want)
			}
		})
	}

	if _, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, ModeFind); ok {
		t.Error("plain runes in find mode should not be bound")
	}
	if _, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyEnter}, Mode("missing")); ok {
		t.Error("unknown mode should have no bindings")
	}
}

func TestGetBindingsForCommand(t *testing.T) {
	km := DefaultKeymap()
	if got := km.GetBindingsForCommand(CmdToggleOption, ModeOpen); len(got) != 2 {
		t.Errorf("toggle bindings = %d, want 2", len(got))
	}
	if got := km.GetBindingsForCommand(CmdToggleOption, ModeClosed); len(got) != 0 {
		t.Errorf("toggle should not be bound while closed, got %d", len(got))
	}
	if len(km.GetModeBindings(ModeFind)) == 0 {
		t.Error("find mode should have bindings")
	}
}

func TestHelp(t *testing.T) {
	km := DefaultKeymap()
	help := km.Help(ModeOpen)

	want := map[string]string{
		"down":       "j/down",
		"up":         "k/up",
		"toggle":     "space/enter",
		"close":      "esc/q",
		"next group": "tab",
	}
	got := make(map[string]string)
	for _, h := range help {
		got[h.Description] = h.Keys
	}
	for desc, keys := range want {
		if got[desc] != keys {
			t.Errorf("help %q = %q, want %q", desc, got[desc], keys)
		}
	}
	if km.Help(Mode("missing")) != nil {
		t.Error("Help for unknown mode should be nil")
	}
}
