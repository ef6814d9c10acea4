// Package facet implements the filter-selection state machine behind the
// filter drawer.
//
// The package is framework-free. It knows nothing about terminals or
// Bubbletea; the TUI packages render what it computes and translate user
// input into [Intent] values.
//
// # Ownership
//
// The caller owns the authoritative [Selection]. The drawer owns only its
// [Visibility]. Every user action is expressed as an [Intent] and reduced with
// [Reduce], which returns the next visibility together with at most one
// [Notification] for the owner:
//
//	next, note := facet.Reduce(facet.Snapshot{
//	    Selection:  owner.Selection(),
//	    Visibility: drawer,
//	}, facet.Toggle{CategoryID: "color", Option: "Red", Selected: true})
//	drawer = next
//	facet.Dispatch(note, owner)
//
// The reducer never mutates the selection it is given. A [Change] carries a
// freshly allocated value list for exactly one category; a [Clear] asks the
// owner to empty every category.
//
// # Aggregates
//
// [Selection.ActiveCount] and [Selection.HasActive] are recomputed from the
// snapshot on every render. For very large catalogs a [Counter] keeps the same
// figure up to date incrementally from the notifications it observes.
package facet
