package tui

import (
	"time"

	"github.com/heorconnect/heor-connect/internal/logging"
	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/heorconnect/heor-connect/internal/panels"
	"github.com/heorconnect/heor-connect/internal/router"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Section represents the focusable areas of the dashboard.
type Section int

const (
	SectionSidebar Section = iota // navigation tree
	SectionContent                // panel viewport
	SectionSearch                 // search input
)

var sectionNames = map[Section]string{
	SectionSidebar: "Menu",
	SectionContent: "Content",
	SectionSearch:  "Search",
}

func (s Section) String() string { return sectionNames[s] }

// SearchState holds the inline search input. The applied term lives in
// the router state so every panel sees the same value.
type SearchState struct {
	searchInput  textinput.Model
	searchActive bool
}

// SidebarState holds the navigation tree cursor.
type SidebarState struct {
	sidebarCursor  int
	sidebarVisible bool
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// Options configures a DashboardModel.
type Options struct {
	Router             *router.Router
	ReverseScrollWheel bool
	Logger             *logrus.Entry // nil uses the "tui" component logger
}

// DashboardModel is the interactive dashboard: sidebar, content panel and
// search input over one navigation state.
type DashboardModel struct {
	SearchState
	SidebarState
	ModalStackState

	router *router.Router
	state  *router.State

	// Current panel and the resolution that produced it.
	panel      model.Panel
	resolution router.Resolution

	content viewport.Model
	help    help.Model
	keys    KeyMap

	activeSection Section

	width  int
	height int

	reverseScrollWheel bool

	log *logrus.Entry

	// Last navigation error for status line display (auto-clears after 30s).
	lastError   string
	lastErrorAt time.Time
}

const errorDisplayDuration = 30 * time.Second

// NewDashboardModel creates a dashboard showing the router's initial state.
func NewDashboardModel(opts Options) *DashboardModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search and highlight text..."
	searchInput.CharLimit = 200
	searchInput.Prompt = "/ "

	log := opts.Logger
	if log == nil {
		log = logging.NewLogger("tui")
	}

	m := &DashboardModel{
		SearchState:        SearchState{searchInput: searchInput},
		SidebarState:       SidebarState{sidebarVisible: true},
		router:             opts.Router,
		state:              opts.Router.NewState(),
		content:            viewport.New(0, 0),
		help:               help.New(),
		keys:               DefaultKeyMap(),
		activeSection:      SectionSidebar,
		reverseScrollWheel: opts.ReverseScrollWheel,
		log:                log,
	}
	m.content.MouseWheelEnabled = false
	m.refreshPanel()
	m.focusActiveRow()
	return m
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// State returns a copy of the navigation state.
func (m *DashboardModel) State() *router.State { return m.state.Clone() }

// Panel returns the panel currently shown.
func (m *DashboardModel) Panel() model.Panel { return m.panel }

// refreshPanel rebuilds the panel from the state. The viewport scrolls
// back to the top whenever a different panel or tab is shown.
func (m *DashboardModel) refreshPanel() {
	prev := m.panelKey()
	m.panel, m.resolution = panels.Build(m.router, m.state)
	if m.resolution.Fallback {
		m.log.WithFields(logrus.Fields{
			"requested": m.resolution.Request,
			"route":     m.resolution.Route,
		}).Warn("no panel for active id, showing default")
	}
	m.syncViewport()
	if m.panelKey() != prev {
		m.content.GotoTop()
	}
}

func (m *DashboardModel) panelKey() string {
	return m.panel.Route + "\x00" + m.state.ActiveSectionID + "\x00" +
		m.state.ActiveCountryID + "\x00" + string(m.state.ActivePerspective)
}

// navigate applies a click on a navigation entry.
func (m *DashboardModel) navigate(id string) {
	if err := m.router.ClickNav(m.state, id); err != nil {
		m.log.WithError(err).WithField("id", id).Warn("navigation click ignored")
		m.setError(err)
		return
	}
	m.log.WithFields(logrus.Fields{
		"id":      id,
		"top":     m.state.ActiveTopID,
		"country": m.state.ActiveCountryID,
	}).Debug("navigated")
	m.refreshPanel()
}

// selectSection applies a section tab click.
func (m *DashboardModel) selectSection(id string) {
	m.router.ClickSection(m.state, id)
	m.refreshPanel()
}

// selectPerspective applies a perspective tab click.
func (m *DashboardModel) selectPerspective(p model.Perspective) {
	if err := m.router.ClickPerspective(m.state, p); err != nil {
		m.log.WithError(err).Warn("perspective change ignored")
		m.setError(err)
		return
	}
	m.refreshPanel()
}

func (m *DashboardModel) setError(err error) {
	m.lastError = err.Error()
	m.lastErrorAt = time.Now()
}

func (m *DashboardModel) currentError() string {
	if m.lastError == "" || time.Since(m.lastErrorAt) > errorDisplayDuration {
		return ""
	}
	return m.lastError
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *DashboardModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *DashboardModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *DashboardModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

func (m *DashboardModel) modalContext() ModalContext {
	return ModalContext{ReverseScrollWheel: m.reverseScrollWheel}
}
