package tui

import (
	"strings"

	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/heorconnect/heor-connect/internal/navtree"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const sidebarWidth = 30

// sidebarHeaderLines is the number of branding rows above the tree.
const sidebarHeaderLines = 4

func (m *DashboardModel) sidebarRows() []navtree.Row {
	return m.router.Tree().Visible(m.state.Expanded)
}

func (m *DashboardModel) clampSidebarCursor() {
	rows := m.sidebarRows()
	if len(rows) == 0 {
		m.sidebarCursor = 0
		return
	}
	if m.sidebarCursor < 0 {
		m.sidebarCursor = 0
	}
	if m.sidebarCursor >= len(rows) {
		m.sidebarCursor = len(rows) - 1
	}
}

func (m *DashboardModel) moveSidebarCursor(delta int) {
	m.sidebarCursor += delta
	m.clampSidebarCursor()
}

// activateSidebarCursor clicks the row under the cursor.
func (m *DashboardModel) activateSidebarCursor() {
	rows := m.sidebarRows()
	if len(rows) == 0 {
		return
	}
	m.clampSidebarCursor()
	m.navigate(rows[m.sidebarCursor].Node.ID)
	m.clampSidebarCursor()
}

// focusActiveRow moves the cursor to the visible row of the active entry.
func (m *DashboardModel) focusActiveRow() {
	want := m.activeNavID()
	for i, row := range m.sidebarRows() {
		if row.Node.ID == want {
			m.sidebarCursor = i
			return
		}
	}
}

// activeNavID is the node id the user last selected: the country on the
// country route, the top id otherwise.
func (m *DashboardModel) activeNavID() string {
	if m.state.ActiveTopID == model.RouteCountryDetail && m.state.ActiveCountryID != "" {
		return m.state.ActiveCountryID
	}
	return m.state.ActiveTopID
}

// isRowActive reports whether a row is highlighted as active: it is the
// selected entry, or a group that contains or owns it.
func (m *DashboardModel) isRowActive(n *model.NavNode) bool {
	tree := m.router.Tree()
	if tree.IsAncestorActive(n, m.state.ActiveTopID) {
		return true
	}
	return m.state.ActiveTopID == model.RouteCountryDetail &&
		tree.IsAncestorActive(n, m.state.ActiveCountryID)
}

// expandAll opens every group, or closes them all when all are open.
func (m *DashboardModel) expandAll() {
	var groups []string
	allOpen := true
	m.router.Tree().Walk(func(n *model.NavNode, _ int) bool {
		if n.IsGroup() {
			groups = append(groups, n.ID)
			allOpen = allOpen && m.state.IsExpanded(n.ID)
		}
		return true
	})
	for _, id := range groups {
		if m.state.IsExpanded(id) == allOpen {
			m.navigate(id)
		}
	}
	m.clampSidebarCursor()
}

func (m *DashboardModel) sidebarRowLabel(row navtree.Row) string {
	n := row.Node
	chevron := "  "
	if n.IsGroup() {
		chevron = "▸ "
		if row.Expanded {
			chevron = "▾ "
		}
	}
	label := strings.Repeat("  ", row.Depth) + chevron + Glyph(n.Icon) + " " + n.Label

	// border, padding and the active marker take six columns
	maxLabelWidth := sidebarWidth - 6
	return runewidth.Truncate(label, maxLabelWidth, "~")
}

// buildSidebarLines returns the rendered sidebar lines and the mapping from
// line index to tree row.
func (m *DashboardModel) buildSidebarLines() ([]string, map[int]int) {
	rows := m.sidebarRows()
	rowToCursor := make(map[int]int, len(rows))
	lines := make([]string, 0, len(rows)+sidebarHeaderLines)

	brand := m.router.Tree().Branding()
	lines = append(lines,
		lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Render(brand.Title),
		lipgloss.NewStyle().Foreground(ColorMuted).Render(brand.Subtitle),
		lipgloss.NewStyle().Foreground(ColorMuted).Italic(true).Render(brand.Tagline),
		"",
	)

	for i, row := range rows {
		label := m.sidebarRowLabel(row)
		style := lipgloss.NewStyle().Foreground(ColorText)
		marker := "  "
		if m.isRowActive(row.Node) {
			style = style.Foreground(ColorActive).Bold(true)
			marker = "> "
		}
		if m.activeSection == SectionSidebar && m.sidebarCursor == i {
			style = style.Reverse(true)
		}
		rowToCursor[len(lines)] = i
		lines = append(lines, marker+style.Render(label))
	}

	return lines, rowToCursor
}

func (m *DashboardModel) sidebarCursorAtMouseRow(y int) (int, bool) {
	_, rowToCursor := m.buildSidebarLines()

	// The sidebar border adds one row above the content.
	idx, ok := rowToCursor[y-1]
	return idx, ok
}

// renderSidebar renders the navigation tree in the left sidebar.
func (m *DashboardModel) renderSidebar(height int) string {
	m.clampSidebarCursor()

	style := lipgloss.NewStyle().
		Width(sidebarWidth-2).
		Height(height).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	if m.activeSection == SectionSidebar {
		style = style.BorderForeground(ColorAccent)
	}

	lines, _ := m.buildSidebarLines()
	footer := lipgloss.NewStyle().Foreground(ColorMuted).Render(m.router.Tree().Branding().Version)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	if len(lines) < height {
		lines = append(lines, footer)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return style.Render(content)
}
