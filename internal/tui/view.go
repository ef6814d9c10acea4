package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/tui/styles"
	"github.com/Iron-Ham/facetdrawer/internal/util"
)

const (
	emptyCatalogText = "No items in catalog."
	noMatchText      = "No items match the current filters."
	itemBullet       = "•"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.renderHeader()
	content := m.panel.View(m.renderItems())
	help := m.panel.HelpView()
	if m.width > 0 {
		help = util.TruncateANSI(help, m.width)
	}
	return strings.Join([]string{header, content, help}, "\n")
}

// renderHeader renders the entry button, the match summary and any status.
func (m Model) renderHeader() string {
	st := styles.Active()

	parts := []string{m.panel.ButtonView()}
	if n := len(m.catalog.Items); n > 0 {
		summary := fmt.Sprintf("%s of %s %s",
			humanize.Comma(int64(len(m.matches))),
			humanize.Comma(int64(n)),
			util.Pluralize(n, "item", "items"))
		parts = append(parts, st.Muted.Render(summary))
	}
	if m.status != "" {
		if m.statusErr {
			parts = append(parts, st.ErrorMsg.Render(m.status))
		} else {
			parts = append(parts, st.SuccessMsg.Render(m.status))
		}
	}

	header := strings.Join(parts, "  ")
	if m.width > 0 {
		header = util.TruncateANSI(header, m.width)
	}
	return header
}

// renderItems lists the matching items, one per line. With a known height
// the list is cut to the rows between the header and the help bar.
func (m Model) renderItems() string {
	st := styles.Active()

	var lines []string
	switch {
	case len(m.catalog.Items) == 0:
		lines = append(lines, st.Muted.Render(emptyCatalogText))
	case len(m.matches) == 0:
		lines = append(lines, st.Muted.Render(noMatchText))
	default:
		for _, item := range m.matches {
			lines = append(lines, m.renderItem(item))
		}
	}

	if m.height > 0 {
		lines = clipLines(lines, max(m.height-2, 0))
	}
	if m.width > 0 {
		for i := range lines {
			lines[i] = util.TruncateANSI(lines[i], m.width)
		}
	}
	return strings.Join(lines, "\n")
}

// renderItem renders an item's name followed by its attributes in catalog
// order.
func (m Model) renderItem(item catalog.Item) string {
	st := styles.Active()

	var attrs []string
	for _, c := range m.catalog.Categories {
		values := item.Attributes[c.ID]
		if len(values) == 0 {
			continue
		}
		label := c.Label
		if label == "" {
			label = c.ID
		}
		attrs = append(attrs, label+": "+strings.Join(values, ", "))
	}

	line := st.Primary.Render(itemBullet) + " " + st.Text.Render(item.Name)
	if len(attrs) > 0 {
		line += "  " + st.Muted.Render(strings.Join(attrs, " · "))
	}
	return line
}

// clipLines cuts lines to rows, replacing the last visible line with a count
// of what was left out.
func clipLines(lines []string, rows int) []string {
	if len(lines) <= rows {
		return lines
	}
	if rows == 0 {
		return nil
	}
	hidden := len(lines) - rows + 1
	more := styles.Active().Muted.Render(fmt.Sprintf("… %s more", humanize.Comma(int64(hidden))))
	return append(lines[:rows-1:rows-1], more)
}
