package panel

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if !m.IsOpen() {
		if msg.Button == tea.MouseButtonLeft && m.onButton(msg.X, msg.Y) {
			return m.dispatch(facet.OpenDrawer{})
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if !m.inDrawer(msg.X, msg.Y) {
		return m.dispatch(facet.Backdrop{})
	}

	l, col, ok := m.lineAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	switch l.kind {
	case lineHeader:
		if col >= m.contentWidth()-len(closeLabel) {
			return m.dispatch(facet.CloseDrawer{})
		}
	case lineClear:
		return m.dispatch(facet.ClearAll{})
	case lineCategory:
		for i, e := range m.entries {
			if e.category == l.category {
				m.cursor = i
				break
			}
		}
	case lineOption:
		m.cursor = l.entry
		return m.toggleCurrent()
	case lineApply:
		return m.dispatch(facet.Apply{})
	}
	return m, nil
}

func (m Model) onButton(x, y int) bool {
	return y == m.frame.ButtonRow && x >= 0 && x < lipgloss.Width(m.ButtonView())
}

func (m Model) drawerLeft() int {
	if m.opts.Placement == PlacementRight {
		return max(m.frame.Width-m.opts.Width, 0)
	}
	return 0
}

// drawerHeight is the drawer's outer height including the border.
func (m Model) drawerHeight() int {
	if m.frame.Height > 0 {
		return m.frame.Height - m.frame.DrawerTop
	}
	lay := m.layout()
	return len(lay.top) + lay.bodyHeight + len(lay.bottom) + 2
}

func (m Model) inDrawer(x, y int) bool {
	left := m.drawerLeft()
	top := m.frame.DrawerTop
	return x >= left && x < left+m.opts.Width && y >= top && y < top+m.drawerHeight()
}

// lineAt maps a screen position inside the drawer to the line under it and
// the column within the content area.
func (m Model) lineAt(x, y int) (line, int, bool) {
	row := y - m.frame.DrawerTop - 1
	col := x - m.drawerLeft() - 2
	if row < 0 || col < 0 || col >= m.contentWidth() {
		return line{}, 0, false
	}

	lay := m.layout()
	if row < len(lay.top) {
		return lay.top[row], col, true
	}
	row -= len(lay.top)
	if row < lay.bodyHeight {
		i := lay.offset + row
		if i >= len(lay.body) {
			return line{}, 0, false
		}
		return lay.body[i], col, true
	}
	row -= lay.bodyHeight
	if row < len(lay.bottom) {
		return lay.bottom[row], col, true
	}
	return line{}, 0, false
}
