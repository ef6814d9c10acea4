package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/Iron-Ham/facetdrawer/internal/facet"
	"github.com/Iron-Ham/facetdrawer/internal/tui/styles"
	"github.com/Iron-Ham/facetdrawer/internal/util"
)

const (
	buttonLabel = "Filters"
	titleLabel  = "Filters"
	closeLabel  = "[x]"
	clearLabel  = "Clear all filters"
	applyLabel  = "Apply Filters"
	checkedBox  = "[✓]"
	emptyBox    = "[ ]"
	cursorMark  = "›"

	// optionIndent is the width of the cursor mark, checkbox and spacing in
	// front of an option label.
	optionIndent = 6
)

type lineKind int

const (
	lineSpacer lineKind = iota
	lineHeader
	lineClear
	lineCategory
	lineOption
	lineFind
	lineApply
)

// line is one row inside the drawer border.
type line struct {
	kind     lineKind
	category int // catalog index, for category and option lines
	entry    int // entry index, for option lines
}

// drawerLayout splits the drawer into a fixed top, a scrolling body and a
// fixed bottom. Rendering and mouse hit-testing both derive from it.
type drawerLayout struct {
	top        []line
	body       []line
	bottom     []line
	bodyHeight int
	offset     int
}

func (m Model) contentWidth() int {
	return m.opts.Width - 4
}

// contentHeight is the number of rows inside the border, or 0 when the frame
// has no height and the drawer takes its natural height.
func (m Model) contentHeight() int {
	if m.frame.Height <= 0 {
		return 0
	}
	return max(m.frame.Height-m.frame.DrawerTop-2, 1)
}

func (m Model) layout() drawerLayout {
	var l drawerLayout

	l.top = append(l.top, line{kind: lineHeader})
	if m.props.Selection.HasActive() {
		l.top = append(l.top, line{kind: lineClear})
	}
	l.top = append(l.top, line{kind: lineSpacer})

	cursorLine := 0
	entryIdx := 0
	for ci, c := range m.props.Catalog {
		if ci > 0 {
			l.body = append(l.body, line{kind: lineSpacer})
		}
		l.body = append(l.body, line{kind: lineCategory, category: ci})
		for range c.Options {
			if entryIdx == m.cursor {
				cursorLine = len(l.body)
			}
			l.body = append(l.body, line{kind: lineOption, category: ci, entry: entryIdx})
			entryIdx++
		}
	}

	l.bottom = append(l.bottom, line{kind: lineSpacer})
	if m.find.active {
		l.bottom = append(l.bottom, line{kind: lineFind})
	}
	l.bottom = append(l.bottom, line{kind: lineApply})

	l.bodyHeight = len(l.body)
	if h := m.contentHeight(); h > 0 {
		l.bodyHeight = max(h-len(l.top)-len(l.bottom), 1)
	}
	l.offset = scrollOffset(cursorLine, len(l.body), l.bodyHeight)
	return l
}

// scrollOffset returns the first visible body line that keeps target on
// screen with one line of context below it where possible.
func scrollOffset(target, total, visible int) int {
	if total <= visible || target < visible-1 {
		return 0
	}
	return min(target-visible+2, total-visible)
}

// ButtonView renders the entry control with the active-filter badge.
func (m Model) ButtonView() string {
	st := styles.Active()
	b := st.FilterButton.Render(buttonLabel)
	if n := m.props.Selection.ActiveCount(); n > 0 {
		b += " " + st.Badge.Render(humanize.Comma(int64(n)))
	}
	return b
}

// DrawerView renders the drawer box, or "" while it is closed.
func (m Model) DrawerView() string {
	if !m.IsOpen() {
		return ""
	}

	lay := m.layout()
	rows := facet.Rows(m.props.Catalog, m.props.Selection)
	w := m.contentWidth()

	out := make([]string, 0, len(lay.top)+lay.bodyHeight+len(lay.bottom))
	for _, l := range lay.top {
		out = append(out, m.renderLine(l, rows, w))
	}
	end := min(lay.offset+lay.bodyHeight, len(lay.body))
	for _, l := range lay.body[lay.offset:end] {
		out = append(out, m.renderLine(l, rows, w))
	}
	for i := end - lay.offset; i < lay.bodyHeight; i++ {
		out = append(out, "")
	}
	for _, l := range lay.bottom {
		out = append(out, m.renderLine(l, rows, w))
	}

	for i := range out {
		out[i] = util.FitWidth(out[i], w)
	}
	return styles.Active().Drawer.Width(m.opts.Width - 2).Render(strings.Join(out, "\n"))
}

func (m Model) renderLine(l line, rows []facet.CategoryRow, w int) string {
	st := styles.Active()

	switch l.kind {
	case lineHeader:
		gap := max(w-len(titleLabel)-len(closeLabel), 1)
		return st.DrawerTitle.Render(titleLabel) + strings.Repeat(" ", gap) + st.CloseControl.Render(closeLabel)

	case lineClear:
		return st.ClearButton.Render(clearLabel)

	case lineCategory:
		row := rows[l.category]
		label := row.Label
		if label == "" {
			label = row.ID
		}
		suffix := ""
		if row.Selected > 0 {
			suffix = " " + st.CategoryCount.Render(fmt.Sprintf("(%d)", row.Selected))
		}
		return st.Category.Render(util.TruncateANSI(label, w-lipgloss.Width(suffix))) + suffix

	case lineOption:
		e := m.entries[l.entry]
		return m.renderOption(l.entry, rows[e.category].ID, rows[e.category].Options[e.option], w)

	case lineFind:
		return m.renderFind()

	case lineApply:
		return st.ApplyButton.Render(applyLabel)
	}
	return ""
}

func (m Model) renderOption(entryIdx int, categoryID string, opt facet.OptionRow, w int) string {
	st := styles.Active()

	mark := "  "
	if entryIdx == m.cursor {
		mark = st.Cursor.Render(cursorMark) + " "
	}
	box := st.FilterCheckboxEmpty.Render(emptyBox)
	if opt.Selected {
		box = st.FilterCheckbox.Render(checkedBox)
	}

	count := ""
	if counts, ok := m.props.Counts[categoryID]; ok {
		count = humanize.Comma(int64(counts[opt.Option]))
	}
	avail := w - optionIndent
	if count != "" {
		avail -= len(count) + 1
	}

	label := util.TruncateANSI(opt.Option, max(avail, 1))
	switch {
	case m.isMatch(entryIdx):
		label = st.SearchMatch.Render(label)
	case entryIdx == m.cursor:
		label = st.Cursor.Render(label)
	default:
		label = st.Text.Render(label)
	}

	row := mark + box + " " + label
	if count != "" {
		gap := max(w-lipgloss.Width(row)-len(count), 1)
		row += strings.Repeat(" ", gap) + st.Muted.Render(count)
	}
	return row
}

func (m Model) renderFind() string {
	st := styles.Active()

	var info string
	switch {
	case m.find.err != nil:
		info = "invalid pattern"
	case m.find.input.Value() == "":
	case len(m.find.matches) == 0:
		info = "no match"
	default:
		info = fmt.Sprintf("%d/%d", m.find.current+1, len(m.find.matches))
	}
	if info == "" {
		return m.find.input.View()
	}
	return m.find.input.View() + " " + st.SearchInfo.Render(info)
}

// View renders the drawer over background. Behind an open drawer the
// background is dimmed and acts as the backdrop; a closed drawer returns
// background unchanged.
func (m Model) View(background string) string {
	if !m.IsOpen() {
		return background
	}
	st := styles.Active()

	drawer := strings.Split(m.DrawerView(), "\n")
	bg := strings.Split(background, "\n")

	rows := len(drawer)
	if m.frame.Height > 0 {
		rows = max(rows, m.frame.Height-m.frame.DrawerTop)
	} else {
		rows = max(rows, len(bg))
	}

	rest := m.frame.Width - m.opts.Width
	if m.frame.Width <= 0 {
		rest = 0
		for _, b := range bg {
			rest = max(rest, ansi.StringWidth(b))
		}
	}
	rest = max(rest, 0)

	var b strings.Builder
	for i := 0; i < rows; i++ {
		d := ""
		if i < len(drawer) {
			d = drawer[i]
		}
		d = util.FitWidth(d, m.opts.Width)

		back := ""
		if i < len(bg) {
			back = ansi.Strip(bg[i])
		}
		back = st.Backdrop.Render(util.FitWidth(back, rest))

		if i > 0 {
			b.WriteByte('\n')
		}
		if m.opts.Placement == PlacementRight {
			b.WriteString(back + d)
		} else {
			b.WriteString(d + back)
		}
	}
	return b.String()
}

// HelpView renders the key hints for the drawer's current mode.
func (m Model) HelpView() string {
	st := styles.Active()
	var parts []string
	for _, h := range m.opts.Keymap.Help(m.Mode()) {
		parts = append(parts, st.HelpKey.Render(h.Keys)+" "+st.HelpBar.Render(h.Description))
	}
	return strings.Join(parts, st.HelpBar.Render(" • "))
}
