package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasferrand/pathex/internal/cli"
	"github.com/lucasferrand/pathex/internal/db"
	"github.com/lucasferrand/pathex/internal/repository"
	"github.com/lucasferrand/pathex/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pathex/pathex.db
	dbPath := os.Getenv("PATHEX_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pathex", "pathex.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	clientRepo := repository.NewSQLiteClientRepo(database)
	deliverableRepo := repository.NewSQLiteDeliverableRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)

	// Wire unit of work for transactional progress updates
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	assessmentSvc := service.NewAssessmentService(deliverableRepo)
	progressSvc := service.NewProgressService(progressRepo, uow)

	app := &cli.App{
		Clients:     service.NewClientService(clientRepo),
		Assessments: assessmentSvc,
		Progress:    progressSvc,
		Status:      service.NewStatusService(assessmentSvc, progressSvc),
	}

	// Detect interactive terminal for the wizard and checklist views.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
