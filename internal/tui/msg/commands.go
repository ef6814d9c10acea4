package msg

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

// StatusTTL is how long a transient status line stays visible.
const StatusTTL = 3 * time.Second

// Notify returns a command that delivers a facet notification to the owner as
// a message. A nil notification yields a nil command.
func Notify(n facet.Notification) tea.Cmd {
	switch n := n.(type) {
	case facet.Change:
		values := slices.Clone(n.Values)
		if values == nil {
			values = []string{}
		}
		return func() tea.Msg {
			return FilterChangeMsg{CategoryID: n.CategoryID, Values: values}
		}
	case facet.Clear:
		return func() tea.Msg { return FilterClearMsg{} }
	default:
		return nil
	}
}

// WaitForReload returns a command that blocks until the catalog watcher
// reports a reload. It returns nil once the channel is closed, which ends the
// subscription.
func WaitForReload(events <-chan catalog.Reload) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-events
		if !ok {
			return nil
		}
		return CatalogReloadedMsg{Catalog: r.Catalog, Err: r.Err}
	}
}

// WaitForError returns a command that blocks until errs delivers an error
// and reports it as an ErrMsg. It returns nil once the channel is closed.
func WaitForError(errs <-chan error) tea.Cmd {
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return nil
		}
		return ErrMsg{Err: err}
	}
}

// ExpireStatus returns a command that sends StatusExpiredMsg after StatusTTL.
func ExpireStatus(setAt time.Time) tea.Cmd {
	return tea.Tick(StatusTTL, func(time.Time) tea.Msg {
		return StatusExpiredMsg{SetAt: setAt}
	})
}
