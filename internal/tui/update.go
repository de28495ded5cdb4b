package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if h := m.activeInlineHandler(); h != nil {
		if handled, cmd := h.HandleKey(m, msg); handled {
			return m, cmd
		}
	}

	return m.handleGlobalKeys(msg)
}

// handleGlobalKeys handles dashboard-level shortcuts.
// Only reached when no modal is on the stack and no inline handler consumed the key.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Escape):
		if m.hasSearch() {
			m.clearSearch()
		}
		return m, nil

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))
		return m, nil

	case key.Matches(msg, k.Search):
		return m, m.openSearch()

	case key.Matches(msg, k.NextSection):
		return m, m.cycleSection(1)

	case key.Matches(msg, k.PrevSection):
		return m, m.cycleSection(-1)

	case key.Matches(msg, k.ToggleSidebar):
		m.sidebarVisible = !m.sidebarVisible
		if !m.sidebarVisible && m.activeSection == SectionSidebar {
			m.activeSection = SectionContent
		}
		m.syncViewport()
		return m, nil

	case key.Matches(msg, k.Left):
		m.moveTab(-1)
		return m, nil

	case key.Matches(msg, k.Right):
		m.moveTab(1)
		return m, nil

	case key.Matches(msg, k.Perspective):
		m.togglePerspective()
		return m, nil

	case key.Matches(msg, k.ExpandAll):
		m.expandAll()
		return m, nil
	}

	if m.activeSection == SectionSidebar {
		m.handleSidebarKeys(msg)
	} else {
		m.handleContentKeys(msg)
	}
	return m, nil
}

func (m *DashboardModel) handleSidebarKeys(msg tea.KeyMsg) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		m.moveSidebarCursor(-1)
	case key.Matches(msg, k.Down):
		m.moveSidebarCursor(1)
	case key.Matches(msg, k.Home):
		m.sidebarCursor = 0
	case key.Matches(msg, k.End):
		m.sidebarCursor = len(m.sidebarRows()) - 1
		m.clampSidebarCursor()
	case key.Matches(msg, k.Enter):
		m.activateSidebarCursor()
	}
}

func (m *DashboardModel) handleContentKeys(msg tea.KeyMsg) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		m.content.ScrollUp(1)
	case key.Matches(msg, k.Down):
		m.content.ScrollDown(1)
	case key.Matches(msg, k.PageUp):
		m.content.HalfPageUp()
	case key.Matches(msg, k.PageDown):
		m.content.HalfPageDown()
	case key.Matches(msg, k.Home):
		m.content.GotoTop()
	case key.Matches(msg, k.End):
		m.content.GotoBottom()
	}
}

// cycleSection moves focus between sidebar, content and search.
func (m *DashboardModel) cycleSection(delta int) tea.Cmd {
	order := []Section{SectionSidebar, SectionContent, SectionSearch}
	if !m.sidebarVisible {
		order = order[1:]
	}
	idx := 0
	for i, s := range order {
		if s == m.activeSection {
			idx = i
			break
		}
	}
	next := order[((idx+delta)%len(order)+len(order))%len(order)]
	if next == SectionSearch {
		return m.openSearch()
	}
	if m.activeSection == SectionSearch {
		m.searchActive = false
		m.searchInput.Blur()
	}
	m.activeSection = next
	return nil
}

// handleMouseEvent processes mouse interactions
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if h := m.activeInlineHandler(); h != nil {
		if handled, cmd := h.HandleMouse(m, msg); handled {
			return m, cmd
		}
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	inSidebar := m.sidebarVisible && msg.X < sidebarWidth

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.handleMouseClick(msg.X, msg.Y)

	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		// Wheel up moves up unless reversed.
		up := msg.Button == tea.MouseButtonWheelUp
		if m.reverseScrollWheel {
			up = !up
		}
		delta := 1
		if up {
			delta = -1
		}
		if inSidebar {
			m.moveSidebarCursor(delta)
		} else if up {
			m.content.ScrollUp(3)
		} else {
			m.content.ScrollDown(3)
		}
	}
	return m, nil
}

// handleMouseClick focuses the clicked area and activates what is under
// the pointer: a sidebar row or a tab.
func (m *DashboardModel) handleMouseClick(x, y int) (tea.Model, tea.Cmd) {
	if m.width <= 0 || m.height <= 0 {
		return m, nil
	}

	if m.sidebarVisible {
		if x < sidebarWidth {
			m.activeSection = SectionSidebar
			if idx, ok := m.sidebarCursorAtMouseRow(y); ok {
				m.sidebarCursor = idx
				m.activateSidebarCursor()
			}
			return m, nil
		}
		x -= sidebarWidth
	}

	m.activeSection = SectionContent
	// Content is padded by one column.
	if z, ok := m.tabAt(x-1, y); ok {
		m.activateTab(z.kind, z.id)
	}
	return m, nil
}
