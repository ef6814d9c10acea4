package styles

import (
	"slices"
	"testing"
)

func TestBuiltinThemes(t *testing.T) {
	want := []string{"default", "monokai", "dracula", "nord"}
	if got := BuiltinThemes(); !slices.Equal(got, want) {
		t.Errorf("BuiltinThemes() = %v, want %v", got, want)
	}
}

func TestIsValidTheme(t *testing.T) {
	tests := []struct {
		theme string
		want  bool
	}{
		{"default", true},
		{"monokai", true},
		{"dracula", true},
		{"nord", true},
		{"gruvbox", false},
		{"", false},
		{"Default", false},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			if got := IsValidTheme(tt.theme); got != tt.want {
				t.Errorf("IsValidTheme(%q) = %v, want %v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestGetPalette(t *testing.T) {
	tests := []struct {
		name        ThemeName
		wantPrimary string
	}{
		{ThemeDefault, "#A78BFA"},
		{ThemeMonokai, "#F92672"},
		{ThemeDracula, "#BD93F9"},
		{ThemeNord, "#88C0D0"},
		{"unknown", "#A78BFA"},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			if got := string(GetPalette(tt.name).Primary); got != tt.wantPrimary {
				t.Errorf("GetPalette(%q).Primary = %q, want %q", tt.name, got, tt.wantPrimary)
			}
		})
	}
}

func TestPaletteColorConsistency(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			p := GetPalette(ThemeName(name))
			colors := map[string]string{
				"Primary":       string(p.Primary),
				"Secondary":     string(p.Secondary),
				"Warning":       string(p.Warning),
				"Error":         string(p.Error),
				"Muted":         string(p.Muted),
				"Surface":       string(p.Surface),
				"Text":          string(p.Text),
				"Border":        string(p.Border),
				"SearchMatchBg": string(p.SearchMatchBg),
				"SearchMatchFg": string(p.SearchMatchFg),
			}
			for field, color := range colors {
				if color == "" {
					t.Errorf("%s color is empty", field)
				}
			}
		})
	}
}
