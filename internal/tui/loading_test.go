package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/heorconnect/heor-connect/internal/startup"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, ctx context.Context) (*App, *startup.Gate, *DashboardModel) {
	t.Helper()
	dash := newTestDashboard(t, "mear")
	gate := startup.New(time.Millisecond)
	loading := NewLoadingPage(ctx, gate, dash.router.Tree().Branding())
	app := NewApp(loading, NewDashboardPage(dash))
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app, gate, dash
}

func TestApp_StartsOnLoadingPage(t *testing.T) {
	t.Parallel()

	app, gate, _ := newTestApp(t, context.Background())
	if got := app.ActivePage(); got != PageLoading {
		t.Fatalf("active page = %q, want loading", got)
	}
	if gate.Ready() {
		t.Fatal("gate open before startup elapsed")
	}
	if out := app.View(); !strings.Contains(out, "Loading") {
		t.Fatal("loading screen not rendered")
	}
}

func TestApp_StartupElapsedSwitchesOnce(t *testing.T) {
	t.Parallel()

	app, gate, dash := newTestApp(t, context.Background())
	app.Update(StartupElapsedMsg{Elapsed: true})

	if got := app.ActivePage(); got != PageDashboard {
		t.Fatalf("active page = %q, want dashboard", got)
	}
	if !gate.Ready() {
		t.Fatal("gate not open after startup elapsed")
	}
	if dash.width != 120 || dash.height != 40 {
		t.Fatalf("dashboard size = %dx%d, want replayed 120x40", dash.width, dash.height)
	}

	before := dash.State()
	app.Update(StartupElapsedMsg{Elapsed: true})
	after := dash.State()
	if app.ActivePage() != PageDashboard || before.ActiveTopID != after.ActiveTopID {
		t.Fatal("second startup event changed the dashboard")
	}
}

func TestLoadingPage_SecondElapsedIgnored(t *testing.T) {
	t.Parallel()

	gate := startup.New(time.Millisecond)
	l := NewLoadingPage(context.Background(), gate, newTestDashboard(t, "mear").router.Tree().Branding())

	if _, nav := l.Update(StartupElapsedMsg{Elapsed: true}); nav == nil || nav.PageID != PageDashboard {
		t.Fatal("first elapsed event should switch to the dashboard")
	}
	if _, nav := l.Update(StartupElapsedMsg{Elapsed: true}); nav != nil {
		t.Fatal("second elapsed event should do nothing")
	}
}

func TestLoadingPage_CanceledWaitDoesNotOpen(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gate := startup.New(time.Hour)
	l := NewLoadingPage(ctx, gate, newTestDashboard(t, "mear").router.Tree().Branding())

	msg := l.waitCmd()()
	elapsed, ok := msg.(StartupElapsedMsg)
	if !ok || elapsed.Elapsed {
		t.Fatalf("wait returned %#v, want canceled", msg)
	}
	if _, nav := l.Update(msg); nav != nil {
		t.Fatal("canceled wait must not switch pages")
	}
	if gate.Ready() {
		t.Fatal("canceled wait opened the gate")
	}
}

func TestLoadingPage_Progress(t *testing.T) {
	t.Parallel()

	gate := startup.New(2 * time.Second)
	l := NewLoadingPage(context.Background(), gate, newTestDashboard(t, "mear").router.Tree().Branding())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	l.now = func() time.Time { return now }
	l.Init()

	if got := l.percent(); got != 0 {
		t.Fatalf("percent at start = %v", got)
	}
	now = start.Add(time.Second)
	if got := l.percent(); got != 0.5 {
		t.Fatalf("percent halfway = %v", got)
	}
	now = start.Add(time.Minute)
	if got := l.percent(); got != 1 {
		t.Fatalf("percent after delay = %v", got)
	}
}
