package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 60
	minHeight = 16
)

// contentWidth returns the width available for main content, accounting for sidebar.
func (m *DashboardModel) contentWidth() int {
	if m.sidebarVisible {
		w := m.width - sidebarWidth
		if w < 40 {
			w = 40
		}
		return w
	}
	return m.width
}

// innerWidth is the content width minus horizontal padding.
func (m *DashboardModel) innerWidth() int {
	return max(1, m.contentWidth()-2)
}

// layoutHeights splits the content column into header, viewport and the
// search row. The status line takes the last row.
func (m *DashboardModel) layoutHeights() (headerHeight, viewportHeight, searchHeight int) {
	header, _ := m.headerLayout(m.innerWidth())
	headerHeight = len(header)
	if m.hasSearch() {
		searchHeight = 1
	}
	statusLineHeight := 1
	viewportHeight = max(1, m.height-headerHeight-searchHeight-statusLineHeight)
	return headerHeight, viewportHeight, searchHeight
}

// syncViewport sizes the viewport to the layout and re-renders the panel
// body into it, keeping the scroll offset where possible.
func (m *DashboardModel) syncViewport() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	m.content.Width = m.innerWidth()
	m.content.Height = vpHeight
	m.content.SetContent(m.renderBlocks(m.innerWidth()))
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	return m.renderDashboard()
}

// renderDashboard renders the main dashboard layout
func (m *DashboardModel) renderDashboard() string {
	if m.height < minHeight || m.width < minWidth {
		return "Terminal too small. Resize to at least 60x16."
	}

	header, _ := m.headerLayout(m.innerWidth())
	sections := append([]string{}, header...)
	sections = append(sections, m.content.View())
	if m.hasSearch() {
		sections = append(sections, m.renderSearchBar())
	}

	mainContent := lipgloss.NewStyle().
		Width(m.contentWidth()).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	contentArea := lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusLine())

	if !m.sidebarVisible {
		return contentArea
	}
	sidebar := m.renderSidebar(m.height - 2)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, contentArea)
}

func (m *DashboardModel) renderSearchBar() string {
	if m.searchActive {
		m.searchInput.Width = max(10, m.innerWidth()-4)
		return m.searchInput.View()
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render("/ " + m.state.Search)
}
