package catalog

import (
	"slices"

	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

// Matches reports whether an item satisfies the selection. Values within a
// category are alternatives (OR); categories combine with AND. Categories
// with an empty selection do not restrict anything.
func Matches(item Item, sel facet.Selection) bool {
	for id, wanted := range sel {
		if len(wanted) == 0 {
			continue
		}
		have := item.Attributes[id]
		if !slices.ContainsFunc(wanted, func(v string) bool { return slices.Contains(have, v) }) {
			return false
		}
	}
	return true
}

// Match returns the items satisfying the selection, in dataset order.
func Match(items []Item, sel facet.Selection) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if Matches(item, sel) {
			out = append(out, item)
		}
	}
	return out
}

// OptionCounts returns, for every option of a category, how many items would
// match if that option alone were selected in that category while the other
// categories keep their current selection.
func OptionCounts(items []Item, sel facet.Selection, cat facet.Category) map[string]int {
	rest := make(facet.Selection, len(sel))
	for id, values := range sel {
		if id != cat.ID {
			rest[id] = values
		}
	}

	counts := make(map[string]int, len(cat.Options))
	for _, item := range items {
		if !Matches(item, rest) {
			continue
		}
		for _, v := range item.Attributes[cat.ID] {
			counts[v]++
		}
	}
	return counts
}
