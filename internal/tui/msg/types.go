package msg

import (
	"slices"
	"time"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

// FilterChangeMsg proposes a new value list for one category.
type FilterChangeMsg struct {
	CategoryID string
	Values     []string
}

// Notification converts the message back into the facet notification it
// carries.
func (m FilterChangeMsg) Notification() facet.Notification {
	return facet.Change{CategoryID: m.CategoryID, Values: slices.Clone(m.Values)}
}

// FilterClearMsg proposes clearing every category.
type FilterClearMsg struct{}

// Notification converts the message back into a facet.Clear.
func (FilterClearMsg) Notification() facet.Notification {
	return facet.Clear{}
}

// CatalogReloadedMsg is delivered when the catalog file changed on disk.
// Exactly one of Catalog and Err is set.
type CatalogReloadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// ErrMsg carries an error from a background source, such as the catalog
// file watcher, to be shown on the status line.
type ErrMsg struct {
	Err error
}

// StatusExpiredMsg clears a transient status line set at the given time.
type StatusExpiredMsg struct {
	SetAt time.Time
}
