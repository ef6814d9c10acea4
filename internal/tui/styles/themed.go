package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/facetdrawer/internal/errors"
)

// ThemedStyles contains all the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	Name ThemeName

	// Colors from the palette
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Convenience styles for colors
	Primary lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	Title lipgloss.Style

	// Entry button and its active-filter badge
	FilterButton lipgloss.Style
	Badge        lipgloss.Style

	// Drawer chrome
	Drawer       lipgloss.Style
	DrawerTitle  lipgloss.Style
	CloseControl lipgloss.Style
	Backdrop     lipgloss.Style

	// Drawer body
	Category            lipgloss.Style
	CategoryCount       lipgloss.Style
	FilterCheckbox      lipgloss.Style
	FilterCheckboxEmpty lipgloss.Style
	Cursor              lipgloss.Style
	ClearButton         lipgloss.Style
	ApplyButton         lipgloss.Style

	// Option find
	SearchPrompt lipgloss.Style
	SearchMatch  lipgloss.Style
	SearchInfo   lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(name ThemeName, p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		Name:           name,
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		WarningColor:   p.Warning,
		ErrorColor:     p.Error,
		MutedColor:     p.Muted,
		SurfaceColor:   p.Surface,
		TextColor:      p.Text,
		BorderColor:    p.Border,
	}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.FilterButton = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 1)

	s.Badge = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Warning).
		Padding(0, 1)

	s.Drawer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.DrawerTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.CloseControl = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Backdrop = lipgloss.NewStyle().
		Foreground(p.Muted).
		Faint(true)

	s.Category = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.CategoryCount = lipgloss.NewStyle().
		Foreground(p.Warning)

	s.FilterCheckbox = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.FilterCheckboxEmpty = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Cursor = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.ClearButton = lipgloss.NewStyle().
		Foreground(p.Error).
		Underline(true)

	s.ApplyButton = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Secondary).
		Padding(0, 1)

	s.SearchPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.SearchMatch = lipgloss.NewStyle().
		Foreground(p.SearchMatchFg).
		Background(p.SearchMatchBg)

	s.SearchInfo = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	s.SuccessMsg = lipgloss.NewStyle().
		Foreground(p.Secondary)

	return s
}

var activeTheme = NewThemedStyles(ThemeDefault, DefaultPalette())

// SetActiveTheme switches the active theme. Unknown names leave the current
// theme in place and return a NotFoundError.
//
// Note: This function is not thread-safe. It is designed to be called during
// startup or from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(name string) error {
	if !IsValidTheme(name) {
		return errors.NewNotFoundError("theme", name)
	}
	activeTheme = NewThemedStyles(ThemeName(name), GetPalette(ThemeName(name)))
	return nil
}

// Active returns the currently active themed styles.
func Active() *ThemedStyles {
	return activeTheme
}
