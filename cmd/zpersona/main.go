package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpersona/internal/cli"
	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/store"
	"github.com/zarlcorp/zpersona/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpersona"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zpersona: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if len(os.Args) > 1 {
		code := runCLI(cfg, logger, os.Args[1], os.Args[2:])
		_ = app.Close()
		os.Exit(code)
	}

	if err := runTUI(ctx, cfg, logger); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(cfg config.Config, logger *slog.Logger, cmd string, args []string) int {
	if cmd == "version" {
		fmt.Printf("zpersona %s\n", version)
		return 0
	}

	if err := cli.New(cfg, logger).Run(cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "zpersona: %v\n", err)
		return 1
	}
	return 0
}

func runTUI(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	firstRun := store.IsFirstRun(cfg.DataDir)

	m := tui.New(version, cfg, firstRun, logger)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
