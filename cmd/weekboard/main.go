package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/weekboard/internal/auth"
	"github.com/alexanderramin/weekboard/internal/cli"
	"github.com/alexanderramin/weekboard/internal/coordinator"
	"github.com/alexanderramin/weekboard/internal/db"
	"github.com/alexanderramin/weekboard/internal/persist"
	"github.com/alexanderramin/weekboard/internal/storage"
	"github.com/alexanderramin/weekboard/internal/store"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// stderrNotifier surfaces coordinator warnings without polluting stdout.
type stderrNotifier struct{}

func (stderrNotifier) Notify(msg string) {
	fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
}

func run() error {
	// Determine DB path: env var or default ~/.weekboard/weekboard.db
	dbPath := os.Getenv("WEEKBOARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".weekboard", "weekboard.db")
	}

	tokenPath := os.Getenv("WEEKBOARD_TOKEN_FILE")
	if tokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		tokenPath = filepath.Join(home, ".weekboard", "token")
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	if os.Getenv("WEEKBOARD_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire persistence and backends
	serializer := persist.NewSerializer(persist.NewSQLiteBlobStore(database), logger)
	authProvider := auth.NewFileProvider(tokenPath)
	local := storage.NewLocalBackend(serializer)
	remote := storage.NewRemoteBackend(storage.LoadRemoteConfig(), authProvider)

	taskStore := store.New(store.State{})

	coord := coordinator.New(coordinator.Config{
		Store:      taskStore,
		Local:      local,
		Remote:     remote,
		Serializer: serializer,
		Auth:       authProvider,
		Logger:     logger,
		Notifier:   stderrNotifier{},
	})
	defer coord.Close()

	app := &cli.App{
		Coordinator: coord,
		Store:       taskStore,
		Auth:        authProvider,
	}

	// Detect interactive terminal for the TUI board.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
