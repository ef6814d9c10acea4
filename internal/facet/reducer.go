package facet

import "slices"

// Intent is a user action directed at the drawer.
type Intent interface {
	intent()
}

// OpenDrawer is the entry control ("Filters").
type OpenDrawer struct{}

// CloseDrawer is the explicit close control in the drawer header.
type CloseDrawer struct{}

// Backdrop is activation of the area outside the drawer.
type Backdrop struct{}

// Apply is the "Apply Filters" footer control. Selections are already applied
// as they are toggled, so it only closes the drawer.
type Apply struct{}

// ClearAll is the "Clear all filters" control.
type ClearAll struct{}

// Toggle flips a single option. Selected is the state the option should have
// after the toggle.
type Toggle struct {
	CategoryID string
	Option     string
	Selected   bool
}

func (OpenDrawer) intent()  {}
func (CloseDrawer) intent() {}
func (Backdrop) intent()    {}
func (Apply) intent()       {}
func (ClearAll) intent()    {}
func (Toggle) intent()      {}

// Notification is an outbound message for the selection owner.
// A nil Notification means the owner has nothing to do.
type Notification interface {
	notification()
}

// Change replaces the selected values of one category.
type Change struct {
	CategoryID string
	Values     []string
}

// Clear asks the owner to reset every category to an empty selection.
type Clear struct{}

func (Change) notification() {}
func (Clear) notification()  {}

// Reduce applies an intent to a snapshot and returns the next drawer
// visibility plus at most one notification. It never mutates the snapshot.
//
// Close, backdrop, apply and clear all close the drawer; clear additionally
// emits a Clear notification. A toggle leaves visibility untouched and emits
// exactly one Change. Unknown intents are ignored.
func Reduce(s Snapshot, in Intent) (Visibility, Notification) {
	switch in := in.(type) {
	case OpenDrawer:
		return Open, nil
	case CloseDrawer, Backdrop, Apply:
		return Closed, nil
	case ClearAll:
		return Closed, Clear{}
	case Toggle:
		return s.Visibility, Change{
			CategoryID: in.CategoryID,
			Values:     ToggleValues(s.Selection.Values(in.CategoryID), in.Option, in.Selected),
		}
	default:
		return s.Visibility, nil
	}
}

// ToggleValues computes the new value list for one category. The input is
// never modified; the result is always a fresh slice.
//
// Selecting appends option unless it is already present. Deselecting removes
// every occurrence of option.
func ToggleValues(current []string, option string, selected bool) []string {
	if selected {
		next := make([]string, 0, len(current)+1)
		next = append(next, current...)
		if !slices.Contains(current, option) {
			next = append(next, option)
		}
		return next
	}

	next := make([]string, 0, len(current))
	for _, v := range current {
		if v != option {
			next = append(next, v)
		}
	}
	return next
}

// Notifier receives notifications on behalf of the selection owner.
type Notifier interface {
	FilterChanged(categoryID string, values []string)
	FiltersCleared()
}

// NotifierFuncs adapts a pair of callbacks to a Notifier. Nil callbacks are
// skipped.
type NotifierFuncs struct {
	OnChange func(categoryID string, values []string)
	OnClear  func()
}

// FilterChanged implements Notifier.
func (f NotifierFuncs) FilterChanged(categoryID string, values []string) {
	if f.OnChange != nil {
		f.OnChange(categoryID, values)
	}
}

// FiltersCleared implements Notifier.
func (f NotifierFuncs) FiltersCleared() {
	if f.OnClear != nil {
		f.OnClear()
	}
}

// Dispatch delivers n to the notifier. It reports whether anything was sent.
func Dispatch(n Notification, to Notifier) bool {
	if to == nil {
		return false
	}
	switch n := n.(type) {
	case Change:
		to.FilterChanged(n.CategoryID, n.Values)
		return true
	case Clear:
		to.FiltersCleared()
		return true
	}
	return false
}
