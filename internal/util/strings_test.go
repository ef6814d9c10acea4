package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestTruncateANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"short plain string unchanged", "hello", 10, "hello"},
		{"exact width unchanged", "hello", 5, "hello"},
		{"plain string truncated", "hello world", 8, "hello w…"},
		{"width of one is the ellipsis", "hello", 1, "…"},
		{"zero width is empty", "hello", 0, ""},
		{"negative width is empty", "hello", -3, ""},
		{"wide characters measured by columns", "日本語テキスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateANSI(tt.input, tt.maxWidth)
			if got != tt.expected {
				t.Errorf("TruncateANSI(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI_Styled(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	short := red.Render("hi")
	if got := TruncateANSI(short, 10); got != short {
		t.Errorf("styled string modified when it fits: %q", got)
	}

	long := red.Render("a very long option label")
	got := TruncateANSI(long, 8)
	if w := ansi.StringWidth(got); w > 8 {
		t.Errorf("result width %d exceeds 8", w)
	}
	if plain := ansi.Strip(got); plain != "a very …" {
		t.Errorf("stripped result = %q, want %q", plain, "a very …")
	}
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"ab", 5, "ab   "},
		{"abcdef", 4, "abc…"},
		{"abcd", 4, "abcd"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FitWidth(tt.input, tt.width); got != tt.expected {
				t.Errorf("FitWidth(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "item", "items"); got != "item" {
		t.Errorf("Pluralize(1) = %q", got)
	}
	for _, n := range []int{0, 2, 1000} {
		if got := Pluralize(n, "item", "items"); got != "items" {
			t.Errorf("Pluralize(%d) = %q", n, got)
		}
	}
}
