// Package selection holds the authoritative filter selection on behalf of the
// application. The drawer never mutates it; it proposes changes through
// facet notifications and the Store applies them.
package selection

import (
	"slices"

	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

// Store owns a facet.Selection. It is not safe for concurrent use; like the
// rest of the UI state it is only touched from the Bubbletea update loop.
type Store struct {
	sel facet.Selection
}

// NewStore creates a store seeded with a copy of initial.
func NewStore(initial facet.Selection) *Store {
	return &Store{sel: initial.Clone()}
}

// Snapshot returns a copy of the current selection for rendering.
func (s *Store) Snapshot() facet.Selection {
	return s.sel.Clone()
}

// Values returns a copy of the values selected for one category.
func (s *Store) Values(categoryID string) []string {
	return slices.Clone(s.sel[categoryID])
}

// FilterChanged replaces one category's values. It implements facet.Notifier.
func (s *Store) FilterChanged(categoryID string, values []string) {
	s.sel[categoryID] = slices.Clone(values)
}

// FiltersCleared resets every category to an empty selection. It implements
// facet.Notifier.
func (s *Store) FiltersCleared() {
	for id := range s.sel {
		s.sel[id] = []string{}
	}
}

// Apply delivers a notification to the store. It reports whether the
// notification was applied; nil notifications are ignored.
func (s *Store) Apply(n facet.Notification) bool {
	return facet.Dispatch(n, s)
}

// ActiveCount returns the number of selected values.
func (s *Store) ActiveCount() int {
	return s.sel.ActiveCount()
}

// Prune drops values the catalog does not offer and returns how many were
// removed. Categories missing from the catalog are emptied.
func (s *Store) Prune(catalog []facet.Category) int {
	removed := 0
	for id, values := range s.sel {
		cat, ok := facet.FindCategory(catalog, id)
		if !ok {
			removed += len(values)
			s.sel[id] = []string{}
			continue
		}
		kept := make([]string, 0, len(values))
		for _, v := range values {
			if slices.Contains(cat.Options, v) {
				kept = append(kept, v)
			}
		}
		removed += len(values) - len(kept)
		s.sel[id] = kept
	}
	return removed
}
