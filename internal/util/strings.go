// Package util provides terminal string helpers shared by the TUI and CLI.
package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated labels. It occupies a single column.
const Ellipsis = "…"

// TruncateANSI truncates s to maxWidth visual columns, ending with Ellipsis
// when anything was cut. Escape sequences and wide characters are measured
// by their rendered width, so styled labels can be passed directly.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return Ellipsis
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// FitWidth truncates or right-pads s so it renders exactly width columns.
func FitWidth(s string, width int) string {
	s = TruncateANSI(s, width)
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Pluralize returns singular when n is 1 and plural otherwise.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
