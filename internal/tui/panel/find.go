package panel

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"
)

// globMeta are the characters that switch a find pattern from substring to
// glob matching.
const globMeta = "*?[{"

// findState is the option find prompt opened with "/".
type findState struct {
	active  bool
	input   textinput.Model
	matches []int // entry indexes, in catalog order
	current int   // index into matches
	restore int   // cursor to return to on cancel
	err     error // pattern did not compile
}

func newFindState() findState {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "find option"
	ti.CharLimit = 64
	return findState{input: ti}
}

// optionMatcher builds a case-insensitive predicate for pattern. Plain text
// matches as a substring; text containing glob metacharacters must match the
// whole option label. An empty pattern yields a nil matcher.
func optionMatcher(pattern string) (func(string) bool, error) {
	p := strings.ToLower(strings.TrimSpace(pattern))
	if p == "" {
		return nil, nil
	}
	if !strings.ContainsAny(p, globMeta) {
		return func(label string) bool {
			return strings.Contains(strings.ToLower(label), p)
		}, nil
	}
	g, err := glob.Compile(p)
	if err != nil {
		return nil, err
	}
	return func(label string) bool {
		return g.Match(strings.ToLower(label))
	}, nil
}

func (m *Model) startFind() tea.Cmd {
	m.find.active = true
	m.find.restore = m.cursor
	m.find.matches = nil
	m.find.current = 0
	m.find.err = nil
	m.find.input.Reset()
	return m.find.input.Focus()
}

// stopFind leaves find mode. When cancel is set the cursor returns to where
// it was before the prompt opened.
func (m *Model) stopFind(cancel bool) {
	if !m.find.active {
		return
	}
	if cancel && m.find.restore < len(m.entries) {
		m.cursor = m.find.restore
	}
	m.find.active = false
	m.find.matches = nil
	m.find.err = nil
	m.find.input.Blur()
}

func (m Model) updateFindInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	before := m.find.input.Value()
	var cmd tea.Cmd
	m.find.input, cmd = m.find.input.Update(msg)
	if m.find.input.Value() != before {
		m.refreshMatches()
		if len(m.find.matches) > 0 {
			m.find.current = 0
			m.cursor = m.find.matches[0]
		}
	}
	return m, cmd
}

// refreshMatches recomputes the matching options for the current pattern.
// The match position follows the cursor when it sits on a match.
func (m *Model) refreshMatches() {
	m.find.matches = nil
	m.find.current = 0

	match, err := optionMatcher(m.find.input.Value())
	m.find.err = err
	if match == nil {
		return
	}
	for i, e := range m.entries {
		if match(m.props.Catalog[e.category].Options[e.option]) {
			m.find.matches = append(m.find.matches, i)
		}
	}
	if i := slices.Index(m.find.matches, m.cursor); i >= 0 {
		m.find.current = i
	}
}

// stepMatch moves the cursor to the next or previous match, wrapping.
func (m *Model) stepMatch(dir int) {
	n := len(m.find.matches)
	if n == 0 {
		return
	}
	m.find.current = (m.find.current + dir + n) % n
	m.cursor = m.find.matches[m.find.current]
}

func (m Model) isMatch(entryIdx int) bool {
	if !m.find.active {
		return false
	}
	return slices.Contains(m.find.matches, entryIdx)
}
