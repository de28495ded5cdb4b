package tui

import tea "github.com/charmbracelet/bubbletea"

// Page IDs.
const (
	PageLoading   = "loading"
	PageDashboard = "dashboard"
)

// Page represents a top-level screen in the TUI (loading, dashboard).
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
}

// DashboardPage adapts a DashboardModel to the Page interface.
type DashboardPage struct {
	model *DashboardModel
}

func NewDashboardPage(m *DashboardModel) *DashboardPage {
	return &DashboardPage{model: m}
}

func (p *DashboardPage) ID() string    { return PageDashboard }
func (p *DashboardPage) Init() tea.Cmd { return p.model.Init() }

func (p *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.model.Update(msg)
	return cmd, nil
}

func (p *DashboardPage) View(_, _ int) string { return p.model.View() }

// Model returns the wrapped dashboard.
func (p *DashboardPage) Model() *DashboardModel { return p.model }
