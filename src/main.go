// main.go - Entry point for ChatFlow
// Loads configuration, opens local storage, restores the saved profile and
// runs the terminal UI.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"chatflow/src/app"
	"chatflow/src/config"
	"chatflow/src/navigation"
	"chatflow/src/services/auth"
	"chatflow/src/services/chatstore"
	"chatflow/src/services/storage"
	"chatflow/src/services/storage/repositories"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "chatflow:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal")
	}

	// The UI owns the terminal, so logs go to a file.
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("starting chatflow", "data_dir", cfg.DataDir, "seed", cfg.Seed)

	store, err := storage.OpenBoltStore(cfg.ProfileDB)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		return err
	}
	defer store.Close()

	profiles := repositories.NewProfileRepository(store, logger)
	authService := auth.NewService(profiles, cfg.LoginDelay, logger)
	if _, err := authService.Restore(); err != nil {
		logger.Error("failed to restore profile", "error", err)
		return err
	}

	session := chatstore.NewSession(chatstore.WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := navigation.RootPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	model := app.New(ctx, authService, session, path,
		app.WithLogger(logger),
		app.WithSeed(cfg.Seed),
	)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	setupGracefulShutdown(program, cancel, logger)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		logger.Error("application failed", "error", err)
		return err
	}

	logger.Info("application exited")
	return nil
}

func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

// setupGracefulShutdown cancels pending work and quits the program on SIGINT/SIGTERM.
func setupGracefulShutdown(program *tea.Program, cancel context.CancelFunc, logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("received shutdown signal")
		cancel()
		program.Quit()
	}()
}
