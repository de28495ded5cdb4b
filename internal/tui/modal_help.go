package tui

import (
	"strings"

	"github.com/heorconnect/heor-connect/internal/model"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// renderHelpModalWithViewport renders the help modal using the provided viewport.
func (m *DashboardModel) renderHelpModalWithViewport(vp *viewport.Model, width, height int) string {
	modalWidth := width - 8   // Leave 4 chars margin on each side
	modalHeight := height - 4 // Leave 2 lines margin top and bottom

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(m.renderHelpModalContent(contentWidth)))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorAccent).
		Bold(true).
		Render("Help")

	statusBar := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render("up/down/Wheel: Scroll | PgUp/PgDn: Page | ?: Toggle Help | ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// renderHelpModalContent returns the key reference and a short guide to the
// navigation tree.
func (m *DashboardModel) renderHelpModalContent(width int) string {
	bold := lipgloss.NewStyle().Bold(true)
	brand := m.router.Tree().Branding()

	h := m.help
	h.Width = width
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(bold.Render(brand.Title+" "+brand.Subtitle) + "\n")
	b.WriteString(brand.Tagline + "\n\n")

	b.WriteString(bold.Render("KEYS") + "\n")
	b.WriteString(h.FullHelpView(m.keys.FullHelp()) + "\n\n")

	b.WriteString(bold.Render("MENU") + "\n")
	b.WriteString(`  Enter on a group opens or closes it. Enter on a page shows it.
  Enter on a country shows its country analysis. The groups that
  contain the page you are on are marked with ">".

`)

	b.WriteString(bold.Render("CONTENT") + "\n")
	b.WriteString(`  Left/right switch the tabs of the current page. On a country
  analysis, p switches between the payer and market access views.

`)

	b.WriteString(bold.Render("SEARCH") + "\n")
	b.WriteString(`  / opens the search field. Matches in the current page are
  highlighted; nothing is hidden. Esc clears the search.

`)

	b.WriteString(bold.Render("PAGES") + "\n")
	m.router.Tree().Walk(func(n *model.NavNode, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth+1) + Glyph(n.Icon) + " " + n.Label + "\n")
		return true
	})
	return b.String()
}
