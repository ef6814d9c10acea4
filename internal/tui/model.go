package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
	"github.com/Iron-Ham/facetdrawer/internal/logging"
	"github.com/Iron-Ham/facetdrawer/internal/selection"
	"github.com/Iron-Ham/facetdrawer/internal/tui/keymap"
	tuimsg "github.com/Iron-Ham/facetdrawer/internal/tui/msg"
	"github.com/Iron-Ham/facetdrawer/internal/tui/panel"
	"github.com/Iron-Ham/facetdrawer/internal/util"
)

// Options configures the application model.
type Options struct {
	Catalog   *catalog.Catalog
	Selection facet.Selection

	// Reloads delivers catalog reloads into the event loop. Nil disables
	// hot reload.
	Reloads       <-chan catalog.Reload
	PruneOnReload bool

	// WatchErrors delivers errors from the catalog file watcher, shown on
	// the status line.
	WatchErrors <-chan error

	Placement   string
	DrawerWidth int
	Mouse       bool

	Logger *logging.Logger
}

// Model is the root Bubble Tea model. It owns the selection and the dataset
// and hands the drawer fresh props after every update.
type Model struct {
	// Core components
	catalog   *catalog.Catalog
	store     *selection.Store
	notifier  facet.Notifier
	panel     panel.Model
	keymap    *keymap.Keymap
	reloads   <-chan catalog.Reload
	watchErrs <-chan error
	prune     bool
	logger    *logging.Logger

	// Items matching the current selection
	matches []catalog.Item

	// UI state
	width     int
	height    int
	status    string
	statusErr bool
	statusAt  time.Time
	quitting  bool
}

// NewModel creates the root model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("tui")

	cat := opts.Catalog
	if cat == nil {
		cat = &catalog.Catalog{}
	}

	km := keymap.DefaultKeymap()
	store := selection.NewStore(opts.Selection)
	m := Model{
		catalog:   cat,
		store:     store,
		notifier:  ownerNotifier(store, logger),
		keymap:    km,
		reloads:   opts.Reloads,
		watchErrs: opts.WatchErrors,
		prune:     opts.PruneOnReload,
		logger:    logger,
		panel: panel.New(panel.Options{
			Placement: panel.Placement(opts.Placement),
			Width:     opts.DrawerWidth,
			Mouse:     opts.Mouse,
			Keymap:    km,
			Logger:    logger.WithComponent("panel"),
		}),
	}
	m.refresh()
	return m
}

// ownerNotifier applies drawer notifications to the store as they happen.
func ownerNotifier(store *selection.Store, logger *logging.Logger) facet.Notifier {
	return facet.NotifierFuncs{
		OnChange: func(categoryID string, values []string) {
			store.FilterChanged(categoryID, values)
			logger.Info("filter changed",
				"category", categoryID,
				"values", values,
				"active", store.ActiveCount(),
			)
		},
		OnClear: func() {
			store.FiltersCleared()
			logger.Info("filters cleared")
		},
	}
}

// Init starts listening for catalog reloads and watcher errors.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tuimsg.WaitForReload(m.reloads), tuimsg.WaitForError(m.watchErrs))
}

// Selection returns a copy of the current selection.
func (m Model) Selection() facet.Selection {
	return m.store.Snapshot()
}

// Matches returns the items matching the current selection.
func (m Model) Matches() []catalog.Item {
	return m.matches
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.panel.SetFrame(m.frame())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if !m.panel.IsOpen() {
			if cmd, ok := m.keymap.GetBinding(msg, keymap.ModeClosed); ok && cmd == keymap.CmdQuit {
				return m.quit()
			}
		}
		return m.updatePanel(msg)

	case tuimsg.FilterChangeMsg:
		m.store.Apply(msg.Notification())
		m.refresh()
		return m, nil

	case tuimsg.FilterClearMsg:
		m.store.Apply(msg.Notification())
		m.refresh()
		return m, nil

	case tuimsg.CatalogReloadedMsg:
		return m.handleReload(msg)

	case tuimsg.ErrMsg:
		m.logger.Error("watcher error", "error", msg.Err.Error())
		expire := m.setStatus(msg.Err.Error(), true)
		return m, tea.Batch(tuimsg.WaitForError(m.watchErrs), expire)

	case tuimsg.StatusExpiredMsg:
		if msg.SetAt.Equal(m.statusAt) {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m.updatePanel(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("quitting", "active", m.store.ActiveCount(), "matches", len(m.matches))
	return m, tea.Quit
}

// updatePanel forwards msg to the drawer and re-renders it with the
// selection as it stands after any notification the drawer sent.
func (m Model) updatePanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) handleReload(msg tuimsg.CatalogReloadedMsg) (tea.Model, tea.Cmd) {
	wait := tuimsg.WaitForReload(m.reloads)

	if msg.Err != nil {
		m.logger.Warn("catalog reload failed", "error", msg.Err)
		expire := m.setStatus("catalog reload failed: "+msg.Err.Error(), true)
		return m, tea.Batch(wait, expire)
	}

	m.catalog = msg.Catalog
	text := fmt.Sprintf("catalog reloaded (%d %s)",
		len(m.catalog.Categories), util.Pluralize(len(m.catalog.Categories), "category", "categories"))
	if m.prune {
		if n := m.store.Prune(m.catalog.Categories); n > 0 {
			text += fmt.Sprintf(", dropped %d stale %s", n, util.Pluralize(n, "value", "values"))
		}
	}
	m.logger.Info("catalog reloaded",
		"categories", len(m.catalog.Categories),
		"items", len(m.catalog.Items),
		"active", m.store.ActiveCount(),
	)

	m.refresh()
	expire := m.setStatus(text, false)
	return m, tea.Batch(wait, expire)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusAt = time.Now()
	return tuimsg.ExpireStatus(m.statusAt)
}

// refresh recomputes the matching items and pushes new props to the drawer.
func (m *Model) refresh() {
	sel := m.store.Snapshot()
	m.matches = catalog.Match(m.catalog.Items, sel)

	var counts map[string]map[string]int
	if len(m.catalog.Items) > 0 {
		counts = make(map[string]map[string]int, len(m.catalog.Categories))
		for _, c := range m.catalog.Categories {
			counts[c.ID] = catalog.OptionCounts(m.catalog.Items, sel, c)
		}
	}

	m.panel.SetProps(panel.Props{
		Catalog:   m.catalog.Categories,
		Selection: sel,
		Counts:    counts,
		Notifier:  m.notifier,
	})
}

// frame places the entry button on the first row, the drawer below it, and
// leaves the last row for the help bar.
func (m Model) frame() panel.Frame {
	return panel.Frame{
		Width:     m.width,
		Height:    max(m.height-1, 0),
		ButtonRow: 0,
		DrawerTop: 1,
	}
}
