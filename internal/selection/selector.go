package selection

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Iron-Ham/facetdrawer/internal/errors"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

// maxSuggestDistance bounds how different a name may be and still be offered
// as a "did you mean" suggestion.
const maxSuggestDistance = 3

// ParseSelector parses one "category=value[,value...]" expression against the
// catalog. Category IDs match exactly; option values match case-insensitively
// and are returned with the catalog's spelling.
func ParseSelector(expr string, catalog []facet.Category) (string, []string, error) {
	id, rawValues, ok := strings.Cut(expr, "=")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return "", nil, errors.NewSelectorError(expr, errors.ErrInvalidSelector)
	}

	cat, found := facet.FindCategory(catalog, id)
	if !found {
		ids := make([]string, 0, len(catalog))
		for _, c := range catalog {
			ids = append(ids, c.ID)
		}
		return "", nil, errors.NewSelectorError(expr, errors.ErrUnknownCategory).WithSuggestion(closest(id, ids))
	}

	var values []string
	for _, raw := range strings.Split(rawValues, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		idx := slices.IndexFunc(cat.Options, func(o string) bool { return strings.EqualFold(o, raw) })
		if idx < 0 {
			return "", nil, errors.NewSelectorError(expr, errors.Wrapf(errors.ErrUnknownOption, "%s in %s", raw, id)).
				WithSuggestion(closest(raw, cat.Options))
		}
		values = facet.ToggleValues(values, cat.Options[idx], true)
	}
	if len(values) == 0 {
		return "", nil, errors.NewSelectorError(expr, errors.ErrInvalidSelector)
	}

	return cat.ID, values, nil
}

// ParseSelectors builds a selection from several expressions. Repeating a
// category merges its values.
func ParseSelectors(exprs []string, catalog []facet.Category) (facet.Selection, error) {
	sel := facet.Selection{}
	for _, expr := range exprs {
		id, values, err := ParseSelector(expr, catalog)
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			sel[id] = facet.ToggleValues(sel[id], v, true)
		}
	}
	return sel, nil
}

// closest returns the candidate nearest to name, or "" when nothing is close.
func closest(name string, candidates []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	lower := strings.ToLower(name)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// FormatSelectors renders sel as "category=value,..." expressions, the
// inverse of ParseSelectors for any catalog that passes validation. Categories follow catalog order; selected
// categories the catalog does not know come last, sorted by id.
func FormatSelectors(sel facet.Selection, catalog []facet.Category) []string {
	var out []string
	seen := make(map[string]bool, len(catalog))
	for _, c := range catalog {
		seen[c.ID] = true
		if values := sel.Values(c.ID); len(values) > 0 {
			out = append(out, c.ID+"="+strings.Join(values, ","))
		}
	}

	var extra []string
	for id, values := range sel {
		if !seen[id] && len(values) > 0 {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)
	for _, id := range extra {
		out = append(out, id+"="+strings.Join(sel[id], ","))
	}
	return out
}
