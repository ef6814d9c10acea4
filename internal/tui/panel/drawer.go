// Package panel implements the filter drawer: a controlled Bubble Tea
// component that renders a catalog of filter categories against a selection
// it does not own.
//
// The drawer keeps only UI state (visibility, cursor, option find). Every
// interaction is turned into a facet.Intent and run through facet.Reduce; the
// resulting notification goes to Props.Notifier, or back to the program as a
// tuimsg.FilterChangeMsg / tuimsg.FilterClearMsg when no notifier is set. The
// owner applies it and hands the drawer fresh Props before the next render.
package panel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/facetdrawer/internal/facet"
	"github.com/Iron-Ham/facetdrawer/internal/logging"
	"github.com/Iron-Ham/facetdrawer/internal/tui/keymap"
	tuimsg "github.com/Iron-Ham/facetdrawer/internal/tui/msg"
)

// Placement is the edge the drawer is attached to. It is purely cosmetic.
type Placement string

const (
	PlacementLeft  Placement = "left"
	PlacementRight Placement = "right"
)

// DefaultWidth is the drawer width used when Options.Width is not set.
const DefaultWidth = 40

// minWidth leaves room for the border, padding, and a checkbox row.
const minWidth = 16

// Props is everything the owner passes in on each render.
type Props struct {
	Catalog   []facet.Category
	Selection facet.Selection

	// Counts optionally maps category id to option to the number of items
	// that option would match. Options without a count show none.
	Counts map[string]map[string]int

	// Notifier receives notifications synchronously while Update runs.
	// When nil, notifications are returned as commands instead.
	Notifier facet.Notifier
}

// Frame tells the drawer where the owner placed it on screen. A zero Height
// renders the drawer at its natural height without scrolling.
type Frame struct {
	Width  int
	Height int

	// ButtonRow is the row holding the entry button, which starts at column 0.
	ButtonRow int
	// DrawerTop is the first row of the drawer box.
	DrawerTop int
}

// Options configures a drawer at construction time.
type Options struct {
	Placement Placement
	Width     int
	Mouse     bool
	Keymap    *keymap.Keymap
	Logger    *logging.Logger
}

// entry locates one option in the catalog.
type entry struct {
	category int
	option   int
}

// Model is the drawer component.
type Model struct {
	opts       Options
	props      Props
	frame      Frame
	visibility facet.Visibility

	entries []entry
	cursor  int
	find    findState
}

// New creates a closed drawer.
func New(opts Options) Model {
	if opts.Placement != PlacementRight {
		opts.Placement = PlacementLeft
	}
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	opts.Width = max(opts.Width, minWidth)
	if opts.Keymap == nil {
		opts.Keymap = keymap.DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	m := Model{opts: opts, find: newFindState()}
	// Leave room for the prompt and the match counter.
	m.find.input.Width = max(m.contentWidth()-12, 4)
	return m
}

// SetProps replaces the catalog and selection. The cursor stays on the same
// option when the new catalog still offers it.
func (m *Model) SetProps(p Props) {
	catID, option, hadCursor := m.Current()
	oldCursor := m.cursor

	m.props = p
	m.entries = flatten(p.Catalog)
	m.cursor = 0
	if hadCursor {
		if i := m.indexOf(catID, option); i >= 0 {
			m.cursor = i
		} else {
			m.cursor = min(oldCursor, max(len(m.entries)-1, 0))
		}
	}
	if m.find.active {
		m.refreshMatches()
	}
}

// Props returns the props the drawer is rendering.
func (m Model) Props() Props {
	return m.props
}

// SetFrame records the terminal size and where the owner placed the drawer.
func (m *Model) SetFrame(f Frame) {
	m.frame = f
}

// Visibility reports whether the drawer is open.
func (m Model) Visibility() facet.Visibility {
	return m.visibility
}

// IsOpen is shorthand for Visibility().IsOpen().
func (m Model) IsOpen() bool {
	return m.visibility.IsOpen()
}

// Mode returns the key binding mode the drawer is in.
func (m Model) Mode() keymap.Mode {
	switch {
	case !m.visibility.IsOpen():
		return keymap.ModeClosed
	case m.find.active:
		return keymap.ModeFind
	default:
		return keymap.ModeOpen
	}
}

// Placement returns the configured placement.
func (m Model) Placement() Placement {
	return m.opts.Placement
}

// Width returns the drawer's outer width in columns.
func (m Model) Width() int {
	return m.opts.Width
}

// Current returns the option under the cursor.
func (m Model) Current() (categoryID, option string, ok bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return "", "", false
	}
	e := m.entries[m.cursor]
	c := m.props.Catalog[e.category]
	return c.ID, c.Options[e.option], true
}

// Update handles key and mouse input. Keys the drawer has no binding for in
// its current mode are ignored so the owner can handle them.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if !m.opts.Mouse {
			return m, nil
		}
		return m.handleMouse(msg)
	}

	if m.find.active {
		var cmd tea.Cmd
		m.find.input, cmd = m.find.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	mode := m.Mode()
	cmd, ok := m.opts.Keymap.GetBinding(msg, mode)
	if !ok {
		if mode == keymap.ModeFind {
			return m.updateFindInput(msg)
		}
		return m, nil
	}

	switch cmd {
	case keymap.CmdOpenDrawer:
		return m.dispatch(facet.OpenDrawer{})
	case keymap.CmdCloseDrawer:
		return m.dispatch(facet.CloseDrawer{})
	case keymap.CmdApply:
		return m.dispatch(facet.Apply{})
	case keymap.CmdClearAll:
		// The clear control is only offered while something is selected.
		if !m.props.Selection.HasActive() {
			return m, nil
		}
		return m.dispatch(facet.ClearAll{})
	case keymap.CmdToggleOption:
		return m.toggleCurrent()
	case keymap.CmdCursorDown:
		m.moveCursor(1)
	case keymap.CmdCursorUp:
		m.moveCursor(-1)
	case keymap.CmdNextCategory:
		m.jumpCategory(1)
	case keymap.CmdPrevCategory:
		m.jumpCategory(-1)
	case keymap.CmdStartFind:
		blink := m.startFind()
		return m, blink
	case keymap.CmdConfirmFind:
		m.stopFind(false)
	case keymap.CmdCancelFind:
		m.stopFind(true)
	case keymap.CmdFindNext:
		m.stepMatch(1)
	case keymap.CmdFindPrev:
		m.stepMatch(-1)
	}
	return m, nil
}

// Dispatch runs an intent as if the user had triggered it. Owners use it to
// drive the drawer programmatically.
func (m Model) Dispatch(in facet.Intent) (Model, tea.Cmd) {
	return m.dispatch(in)
}

// dispatch runs an intent through the reducer and routes the notification.
func (m Model) dispatch(in facet.Intent) (Model, tea.Cmd) {
	snap := facet.Snapshot{
		Catalog:    m.props.Catalog,
		Selection:  m.props.Selection,
		Visibility: m.visibility,
	}
	next, note := facet.Reduce(snap, in)

	if next != m.visibility {
		m.opts.Logger.Debug("drawer visibility changed",
			"from", m.visibility.String(),
			"to", next.String(),
			"intent", intentName(in),
		)
	}
	m.visibility = next
	if !next.IsOpen() {
		m.stopFind(false)
	}
	return m, m.notify(note)
}

func (m Model) notify(n facet.Notification) tea.Cmd {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case facet.Change:
		m.opts.Logger.Debug("change proposed", "category", n.CategoryID, "values", n.Values)
	case facet.Clear:
		m.opts.Logger.Debug("clear proposed", "active_before", m.props.Selection.ActiveCount())
	}

	if m.props.Notifier != nil {
		facet.Dispatch(n, m.props.Notifier)
		return nil
	}
	return tuimsg.Notify(n)
}

func (m Model) toggleCurrent() (Model, tea.Cmd) {
	catID, option, ok := m.Current()
	if !ok {
		return m, nil
	}
	return m.dispatch(facet.ToggleFor(m.props.Selection, catID, option))
}

func (m *Model) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.entries)-1)
}

// jumpCategory moves the cursor to the first option of the next (or previous)
// category that has options, wrapping around the catalog.
func (m *Model) jumpCategory(dir int) {
	if len(m.entries) == 0 {
		return
	}
	current := m.entries[m.cursor].category
	starts := categoryStarts(m.entries)
	idx := 0
	for i, s := range starts {
		if m.entries[s].category == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(starts)) % len(starts)
	m.cursor = starts[idx]
}

func (m Model) indexOf(categoryID, option string) int {
	for i, e := range m.entries {
		c := m.props.Catalog[e.category]
		if c.ID == categoryID && c.Options[e.option] == option {
			return i
		}
	}
	return -1
}

func flatten(catalog []facet.Category) []entry {
	var entries []entry
	for ci, c := range catalog {
		for oi := range c.Options {
			entries = append(entries, entry{category: ci, option: oi})
		}
	}
	return entries
}

// categoryStarts returns the entry index of each category's first option.
func categoryStarts(entries []entry) []int {
	var starts []int
	for i, e := range entries {
		if i == 0 || entries[i-1].category != e.category {
			starts = append(starts, i)
		}
	}
	return starts
}

func intentName(in facet.Intent) string {
	switch in.(type) {
	case facet.OpenDrawer:
		return "open"
	case facet.CloseDrawer:
		return "close"
	case facet.Backdrop:
		return "backdrop"
	case facet.Apply:
		return "apply"
	case facet.ClearAll:
		return "clear"
	case facet.Toggle:
		return "toggle"
	default:
		return "unknown"
	}
}
