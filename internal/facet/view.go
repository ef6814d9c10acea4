package facet

// OptionRow is one option as it should be rendered.
type OptionRow struct {
	Option   string
	Selected bool
}

// CategoryRow is one category and its options in display order.
type CategoryRow struct {
	ID       string
	Label    string
	Selected int // Number of this category's options shown as checked
	Options  []OptionRow
}

// Rows builds the render model for a catalog and selection. Categories and
// options keep catalog order. Values in the selection that the catalog does not
// offer are never shown, although they still count toward ActiveCount.
func Rows(catalog []Category, s Selection) []CategoryRow {
	rows := make([]CategoryRow, 0, len(catalog))
	for _, c := range catalog {
		row := CategoryRow{
			ID:      c.ID,
			Label:   c.Label,
			Options: make([]OptionRow, 0, len(c.Options)),
		}
		for _, opt := range c.Options {
			selected := s.IsSelected(c.ID, opt)
			if selected {
				row.Selected++
			}
			row.Options = append(row.Options, OptionRow{Option: opt, Selected: selected})
		}
		rows = append(rows, row)
	}
	return rows
}

// ToggleFor returns the intent that flips the option's current state.
func ToggleFor(s Selection, categoryID, option string) Toggle {
	return Toggle{
		CategoryID: categoryID,
		Option:     option,
		Selected:   !s.IsSelected(categoryID, option),
	}
}
