package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained modal that owns its own Update/View lifecycle.
// The topmost modal on the dashboard stack receives all input and renders
// full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// ModalContext is the read-only dashboard context a modal needs.
type ModalContext struct {
	ReverseScrollWheel bool
}

// InlineHandler handles key and mouse events for an input that is part of
// the dashboard layout rather than a modal.
type InlineHandler interface {
	// HandleKey processes a key press. Return handled=true if consumed.
	HandleKey(m *DashboardModel, msg tea.KeyMsg) (handled bool, cmd tea.Cmd)
	// HandleMouse processes mouse events. Return handled=true if consumed.
	HandleMouse(m *DashboardModel, msg tea.MouseMsg) (handled bool, cmd tea.Cmd)
}

// activeInlineHandler returns the inline handler that owns input, if any.
func (m *DashboardModel) activeInlineHandler() InlineHandler {
	if m.searchActive {
		return searchInputHandler{}
	}
	return nil
}
