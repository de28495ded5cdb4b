package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal shows the key reference and the page list in a scrollable box.
type HelpModal struct {
	ctx      ModalContext
	keys     KeyMap
	viewport viewport.Model
	render   func(vp *viewport.Model, width, height int) string
}

func NewHelpModal(m *DashboardModel) *HelpModal {
	return &HelpModal{
		ctx:      m.modalContext(),
		keys:     m.keys,
		viewport: viewport.New(80, 20),
		render:   m.renderHelpModalWithViewport,
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Help, h.keys.Quit, h.keys.Escape):
			return true, nil
		case key.Matches(msg, h.keys.Up):
			h.viewport.ScrollUp(1)
		case key.Matches(msg, h.keys.Down):
			h.viewport.ScrollDown(1)
		case key.Matches(msg, h.keys.PageUp):
			h.viewport.HalfPageUp()
		case key.Matches(msg, h.keys.PageDown):
			h.viewport.HalfPageDown()
		case key.Matches(msg, h.keys.Home):
			h.viewport.GotoTop()
		case key.Matches(msg, h.keys.End):
			h.viewport.GotoBottom()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		var lines int
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			lines = -1
		case tea.MouseButtonWheelDown:
			lines = 1
		default:
			return false, nil
		}
		if h.ctx.ReverseScrollWheel {
			lines = -lines
		}
		if lines < 0 {
			h.viewport.ScrollUp(-lines)
		} else {
			h.viewport.ScrollDown(lines)
		}
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	return h.render(&h.viewport, width, height)
}
