package tui

import (
	"context"
	"time"

	"github.com/heorconnect/heor-connect/internal/logging"
	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/heorconnect/heor-connect/internal/startup"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const loadingTickInterval = 100 * time.Millisecond

// StartupElapsedMsg reports the end of the startup wait. Elapsed is false
// when the wait was canceled.
type StartupElapsedMsg struct {
	Elapsed bool
}

// loadingTickMsg advances the progress bar.
type loadingTickMsg time.Time

// LoadingPage is shown until the startup gate opens, then hands over to
// the dashboard page.
type LoadingPage struct {
	ctx      context.Context
	gate     *startup.Gate
	branding model.Branding

	spinner  spinner.Model
	progress progress.Model
	started  time.Time
	now      func() time.Time

	log *logrus.Entry
}

// NewLoadingPage returns the loading page. The gate wait stops when ctx is
// canceled, so ctx should end with the program.
func NewLoadingPage(ctx context.Context, gate *startup.Gate, branding model.Branding) *LoadingPage {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return &LoadingPage{
		ctx:      ctx,
		gate:     gate,
		branding: branding,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		now:      time.Now,
		log:      logging.NewLogger("startup"),
	}
}

func (l *LoadingPage) ID() string { return PageLoading }

func (l *LoadingPage) Init() tea.Cmd {
	l.started = l.now()
	return tea.Batch(l.spinner.Tick, l.waitCmd(), loadingTick())
}

// waitCmd blocks on the gate delay in the command goroutine.
func (l *LoadingPage) waitCmd() tea.Cmd {
	ctx, gate := l.ctx, l.gate
	return func() tea.Msg {
		return StartupElapsedMsg{Elapsed: gate.Wait(ctx)}
	}
}

func loadingTick() tea.Cmd {
	return tea.Tick(loadingTickInterval, func(t time.Time) tea.Msg {
		return loadingTickMsg(t)
	})
}

func (l *LoadingPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case StartupElapsedMsg:
		if !msg.Elapsed {
			return nil, nil
		}
		if !l.gate.Fire() {
			return nil, nil
		}
		l.log.WithField("delay", l.gate.Delay()).Info("startup complete")
		return nil, &PageNav{PageID: PageDashboard}

	case spinner.TickMsg:
		if l.gate.Ready() {
			return nil, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return cmd, nil

	case loadingTickMsg:
		if l.gate.Ready() {
			return nil, nil
		}
		return loadingTick(), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return tea.Quit, nil
		}
	}
	return nil, nil
}

// percent is the share of the startup delay that has passed.
func (l *LoadingPage) percent() float64 {
	if l.started.IsZero() {
		return 0
	}
	p := float64(l.now().Sub(l.started)) / float64(l.gate.Delay())
	return min(1, max(0, p))
}

func (l *LoadingPage) View(width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Render(l.branding.Title)
	subtitle := lipgloss.NewStyle().Foreground(ColorText).Render(l.branding.Subtitle)
	tagline := lipgloss.NewStyle().Foreground(ColorMuted).Italic(true).Render(l.branding.Tagline)
	status := l.spinner.View() + " " + lipgloss.NewStyle().Foreground(ColorMuted).Render("Loading...")

	block := lipgloss.JoinVertical(lipgloss.Center,
		title,
		subtitle,
		"",
		tagline,
		"",
		status,
		l.progress.ViewAs(l.percent()),
		"",
		lipgloss.NewStyle().Foreground(ColorMuted).Render(l.branding.TaglineSub),
	)
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
