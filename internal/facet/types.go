package facet

import "slices"

// Category is one filter group offered by the drawer, e.g. "Color".
// Options are listed in display order.
type Category struct {
	ID      string   // Stable identity used as the selection key
	Label   string   // Display name
	Options []string // Selectable values in display order
}

// Selection maps a category ID to the option values currently chosen for it.
// Membership is what matters; insertion order is kept for display only.
type Selection map[string][]string

// Values returns the values selected for a category. An absent key yields nil.
func (s Selection) Values(categoryID string) []string {
	if s == nil {
		return nil
	}
	return s[categoryID]
}

// IsSelected reports whether option is selected in the given category.
func (s Selection) IsSelected(categoryID, option string) bool {
	return slices.Contains(s.Values(categoryID), option)
}

// ActiveCount returns the total number of selected values across every key in
// the selection, including keys the catalog does not know about.
func (s Selection) ActiveCount() int {
	count := 0
	for _, values := range s {
		count += len(values)
	}
	return count
}

// HasActive reports whether any category has at least one selected value.
func (s Selection) HasActive() bool {
	return s.ActiveCount() > 0
}

// Clone returns a deep copy of the selection.
func (s Selection) Clone() Selection {
	if s == nil {
		return Selection{}
	}
	out := make(Selection, len(s))
	for id, values := range s {
		out[id] = slices.Clone(values)
	}
	return out
}

// Visibility is the open/closed state of the drawer.
type Visibility int

const (
	// Closed is the initial state; only the entry button is shown.
	Closed Visibility = iota
	// Open shows the drawer with every category and option.
	Open
)

// String returns the lowercase name of the visibility state.
func (v Visibility) String() string {
	switch v {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// IsOpen reports whether the drawer is showing.
func (v Visibility) IsOpen() bool {
	return v == Open
}

// Snapshot is everything the reducer reads: the caller's catalog and
// selection plus the drawer's own visibility.
type Snapshot struct {
	Catalog    []Category
	Selection  Selection
	Visibility Visibility
}

// FindCategory looks up a category by ID in catalog order.
func FindCategory(catalog []Category, id string) (Category, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
