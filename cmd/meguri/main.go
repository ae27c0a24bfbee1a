package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harukimoto/meguri/internal/cli"
	"github.com/harukimoto/meguri/internal/db"
	"github.com/harukimoto/meguri/internal/repository"
	"github.com/harukimoto/meguri/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory can set MEGURI_DB for development.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.meguri/meguri.db
	dbPath := os.Getenv("MEGURI_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".meguri", "meguri.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	experienceRepo := repository.NewSQLiteExperienceRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Unit of work covers multi-table itinerary writes
	uow := db.NewSQLiteUnitOfWork(database)
	itineraryRepo := repository.NewSQLiteItineraryRepo(database, uow)

	app := &cli.App{
		Itineraries: service.NewItineraryService(itineraryRepo),
		Favorites:   service.NewFavoriteService(experienceRepo),
		Settings:    service.NewSettingsService(settingsRepo),
	}

	// Detect interactive terminal for the TUI and form entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
