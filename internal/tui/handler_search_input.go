package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type searchInputHandler struct{}

func (h searchInputHandler) HandleKey(m *DashboardModel, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "escape", "esc":
		m.clearSearch()
		return true, nil
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		m.applySearch(m.searchInput.Value())
		m.activeSection = SectionContent
		return true, nil
	case "tab", "shift+tab":
		m.searchActive = false
		m.searchInput.Blur()
		m.applySearch(m.searchInput.Value())
		return false, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applySearch(m.searchInput.Value())
		return true, cmd
	}
}

func (h searchInputHandler) HandleMouse(_ *DashboardModel, _ tea.MouseMsg) (bool, tea.Cmd) {
	return true, nil // swallow mouse events during search input
}

// openSearch focuses the search input, keeping any applied term.
func (m *DashboardModel) openSearch() tea.Cmd {
	m.activeSection = SectionSearch
	m.searchActive = true
	m.searchInput.SetValue(m.state.Search)
	m.searchInput.CursorEnd()
	return m.searchInput.Focus()
}

// clearSearch drops the search term and leaves the input.
func (m *DashboardModel) clearSearch() {
	m.searchActive = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.applySearch("")
	if m.activeSection == SectionSearch {
		m.activeSection = SectionContent
	}
}

// applySearch stores the term in the shared state. Search only changes
// highlighting, so the panel itself is not rebuilt.
func (m *DashboardModel) applySearch(term string) {
	if term == m.state.Search {
		return
	}
	m.state.SetSearch(term)
	m.syncViewport()
}

func (m *DashboardModel) hasSearch() bool {
	return m.searchActive || m.state.Search != ""
}

// highlight renders s in base, with case-insensitive occurrences of term
// rendered in the highlight style.
func highlight(s, term string, base lipgloss.Style) string {
	if term == "" || s == "" {
		return base.Render(s)
	}
	hl := base.Background(ColorHighlight).Foreground(lipgloss.Color("0"))

	lower := strings.ToLower(s)
	needle := strings.ToLower(term)
	if len(lower) != len(s) {
		// Case folding changed byte offsets; fall back to exact matching.
		lower, needle = s, term
	}

	var b strings.Builder
	for {
		i := strings.Index(lower, needle)
		if i < 0 {
			b.WriteString(base.Render(s))
			return b.String()
		}
		if i > 0 {
			b.WriteString(base.Render(s[:i]))
		}
		b.WriteString(hl.Render(s[i : i+len(needle)]))
		s, lower = s[i+len(needle):], lower[i+len(needle):]
		if s == "" {
			return b.String()
		}
	}
}

// countMatches counts case-insensitive occurrences of term in lines.
func countMatches(lines []string, term string) int {
	if term == "" {
		return 0
	}
	needle := strings.ToLower(term)
	n := 0
	for _, l := range lines {
		n += strings.Count(strings.ToLower(l), needle)
	}
	return n
}
