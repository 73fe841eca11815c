package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pomo/internal/cli"
	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/notify"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/alexanderramin/pomo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pomo/pomo.db
	dbPath := os.Getenv("POMO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pomo", "pomo.db")
	}

	userID := os.Getenv("POMO_USER")
	if userID == "" {
		userID = "local"
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	statsRepo := repository.NewSQLiteStatsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry goes to stderr when debugging is on.
	var observers []service.UseCaseObserver
	if os.Getenv("POMO_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo, uow, observers...),
		Sessions: service.NewSessionLogService(sessionRepo, uow, observers...),
		Stats:    service.NewStatsService(statsRepo),
		Settings: service.NewSettingsService(settingsRepo, uow),
		UserID:   userID,
		Notifier: notify.NewBell(os.Stderr),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
