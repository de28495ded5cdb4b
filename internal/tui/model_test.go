package tui

import (
	"strings"
	"testing"

	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/heorconnect/heor-connect/internal/navtree"
	"github.com/heorconnect/heor-connect/internal/router"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestDashboard(t *testing.T, taxonomy string) *DashboardModel {
	t.Helper()
	tree, err := navtree.Load(taxonomy)
	if err != nil {
		t.Fatalf("load taxonomy: %v", err)
	}
	r, err := router.New(tree)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	m := NewDashboardModel(Options{Router: r})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *DashboardModel, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestNewDashboardModel_Defaults(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t, "mear")
	if !m.sidebarVisible {
		t.Fatal("expected sidebar to be visible by default")
	}
	if m.activeSection != SectionSidebar {
		t.Fatalf("active section = %v, want sidebar", m.activeSection)
	}
	if got := m.Panel().Route; got != model.RouteIntroduction {
		t.Fatalf("initial route = %q, want introduction", got)
	}
	if got := m.sidebarRows()[m.sidebarCursor].Node.ID; got != model.RouteIntroduction {
		t.Fatalf("cursor on %q, want introduction", got)
	}
}

func TestNewDashboardModel_RegionalStartsOnPlatform(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t, "regional")
	if got := m.Panel().Route; got != model.RoutePlatform {
		t.Fatalf("initial route = %q, want platform", got)
	}
}

func TestView_RendersPanelAndSidebar(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t, "mear")
	out := m.View()
	for _, want := range []string{"INTRODUCTION", "HEOR CONNECT", "METHODOLOGY", "[Menu]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t, "mear")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if got := m.View(); !strings.Contains(got, "too small") {
		t.Fatalf("view = %q, want size warning", got)
	}
}

func TestRefreshPanel_FallsBackForUnknownTop(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t, "mear")
	m.state.ActiveTopID = "corrupted"
	m.refreshPanel()

	if got := m.Panel().Route; got != model.RouteIntroduction {
		t.Fatalf("route = %q, want default introduction", got)
	}
	if !m.resolution.Fallback {
		t.Fatal("expected fallback to be reported")
	}
}

func TestNavigate_UnknownKeepsStateAndReportsError(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t, "mear")
	before := m.State()

	m.navigate("atlantis")

	after := m.State()
	if after.ActiveTopID != before.ActiveTopID || len(after.Expanded) != len(before.Expanded) {
		t.Fatalf("state changed: before %+v after %+v", before, after)
	}
	if m.currentError() == "" {
		t.Fatal("expected the error to be shown in the status line")
	}
}
