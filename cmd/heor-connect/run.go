package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/heorconnect/heor-connect/internal/logging"
	"github.com/heorconnect/heor-connect/internal/startup"
	"github.com/heorconnect/heor-connect/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func runTUI(ctx context.Context, cfg appConfig) error {
	_, cleanup, err := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return err
	}
	defer cleanup()
	log := logging.NewLogger("main")

	r, err := loadRouter(cfg)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"taxonomy":      r.Tree().Name(),
		"default_route": r.Tree().DefaultRoute(),
		"config":        cfg.ConfigPath,
	}).Info("taxonomy loaded")

	if err := tui.InitializeSkin(cfg.Skin, cfg.ConfigDir); err != nil {
		log.WithError(err).Warn("skin not loaded, using default")
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	// Canceled when the program exits so the startup wait never outlives it.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gate := startup.New(cfg.StartupDelay)
	dashboard := tui.NewDashboardModel(tui.Options{
		Router:             r,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
	})
	app := tui.NewApp(
		tui.NewLoadingPage(ctx, gate, r.Tree().Branding()),
		tui.NewDashboardPage(dashboard),
	)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return errors.New("TUI requires a real terminal")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-sigCh:
			log.WithField("signal", sig.String()).Info("shutting down")
			p.Quit()
		case <-gctx.Done():
		}
		return nil
	})

	err = g.Wait()
	log.Info("exited")
	return err
}
