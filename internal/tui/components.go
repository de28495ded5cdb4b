package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderStatusLine renders the bottom bar: focused section on the left,
// key hints in the centre, search matches and branding on the right.
func (m *DashboardModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorStatusBg).
		Foreground(ColorText)

	w := m.contentWidth()
	veryNarrow := w < 60
	narrow := w < 80

	leftText := fmt.Sprintf("[%s]", m.activeSection)
	if veryNarrow {
		leftText = m.activeSection.String()
	}

	var statusText string
	switch {
	case m.searchActive:
		if narrow {
			statusText = "Enter: Apply • ESC: Cancel"
		} else {
			statusText = "Type search term • Enter: Apply • ESC: Clear"
		}
	case veryNarrow:
		statusText = "Tab • Enter • ? • q"
	default:
		m.help.Width = w / 2
		statusText = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	var rightParts []string
	if e := m.currentError(); e != "" {
		rightParts = append(rightParts, baseStyle.Foreground(ColorError).Render(runewidth.Truncate(e, 24, "…")))
	}
	if m.state.Search != "" {
		rightParts = append(rightParts, fmt.Sprintf("%d match(es)", countMatches(m.panel.Text(), m.state.Search)))
	}
	if !narrow {
		rightParts = append(rightParts, m.renderBranding())
	}
	rightText := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2
	if leftWidth+rightWidth >= w {
		if w < 20 {
			return baseStyle.Width(w).Render(leftText)
		}
		rightText = ""
		rightWidth = 0
	}
	centerWidth := max(0, w-leftWidth-rightWidth)

	if lipgloss.Width(statusText) > centerWidth {
		statusText = ""
	}

	leftPart := baseStyle.Align(lipgloss.Left).Width(leftWidth).Render(leftText)
	centerPart := baseStyle.Align(lipgloss.Center).Width(centerWidth).Render(statusText)
	rightPart := baseStyle.Align(lipgloss.Right).Width(rightWidth).Render(rightText)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPart, centerPart, rightPart)
}

func (m *DashboardModel) renderBranding() string {
	b := m.router.Tree().Branding()
	return lipgloss.NewStyle().
		Background(ColorStatusBg).
		Foreground(ColorAccent).
		Bold(true).
		Render(strings.TrimSpace(b.Title + " " + b.Version))
}
