package main

import (
	"context"
	"corvo-delivery/internal/bootstrap"
	"corvo-delivery/internal/config"
	"corvo-delivery/internal/tui"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// The terminal owns stdout/stderr while the program runs.
const defaultLogFile = "corvo-tui.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.LogOutput == "" || cfg.LogOutput == "stderr" || cfg.LogOutput == "stdout" {
		cfg.LogOutput = defaultLogFile
	}

	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	dispatcher, err := bootstrap.NewDispatcher(store, cfg)
	if err != nil {
		return err
	}

	logger.Info("starting terminal ui", zap.String("driver", cfg.DBDriver))
	p := tea.NewProgram(tui.New(ctx, dispatcher, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
