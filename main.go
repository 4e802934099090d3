package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fenlinghub/trainerdex/cmd"
	"github.com/fenlinghub/trainerdex/handlers"
	"github.com/fenlinghub/trainerdex/indexer"
	"github.com/fenlinghub/trainerdex/models"
	"github.com/fenlinghub/trainerdex/search"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var Version = "develop"

var (
	dataDirectory string
	logLevel      string
	catalogPath   string
	staticDir     string
	refreshCron   string
	port          string
)

func init() {
	flag.StringVar(&logLevel, "log-level", os.Getenv("LOG_LEVEL"), "Set the log level (debug, info, warn, error)")
	flag.StringVar(&port, "port", os.Getenv("PORT"), "Port to run the server on")
	flag.StringVar(&catalogPath, "catalog", os.Getenv("TRAINERDEX_CATALOG"), "Path to the catalog JSON file")
	flag.StringVar(&staticDir, "static-directory", os.Getenv("TRAINERDEX_STATIC_DIR"), "Directory of static web assets to serve at /")
	flag.StringVar(&refreshCron, "refresh-cron", "@every 1h", "Cron spec for periodic catalog reloads (empty disables)")

	var defaultDataDirectory string

	// Check for environment variable override
	if envDataDir := os.Getenv("TRAINERDEX_DATA_DIR"); envDataDir != "" {
		defaultDataDirectory = envDataDir
	} else {
		switch runtime.GOOS {
		case "windows":
			defaultDataDirectory = filepath.Join(os.Getenv("LOCALAPPDATA"), "trainerdex")
		case "darwin":
			defaultDataDirectory = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "trainerdex")
		default:
			defaultDataDirectory = filepath.Join(os.Getenv("HOME"), "trainerdex")
		}
	}

	flag.StringVar(&dataDirectory, "data-directory", defaultDataDirectory, "Path to the data directory")

	// Parse flags early to set log level
	flag.Parse()

	if logLevel == "" {
		logLevel = "info"
	}
	switch logLevel {
	case "debug":
		log.SetLevel(log.LevelDebug)
	case "warn":
		log.SetLevel(log.LevelWarn)
	case "error":
		log.SetLevel(log.LevelError)
	default:
		log.SetLevel(log.LevelInfo)
	}
}

func main() {
	// Subcommands bypass the server startup path entirely.
	if len(os.Args) > 1 && isSubcommand(os.Args[1]) {
		runSubcommand()
		return
	}

	log.Info("Starting Trainerdex!")

	if catalogPath == "" {
		catalogPath = filepath.Join(dataDirectory, "catalog.json")
	}

	if err := os.MkdirAll(dataDirectory, os.ModePerm); err != nil {
		log.Errorf("Failed to create data directory: %s", err)
		return
	}

	log.Debugf("Using '%s/trainerdex.db,-shm,-wal' as the database location", dataDirectory)
	log.Debugf("Using '%s' as the catalog source", catalogPath)

	// Initialize database connection
	if err := models.Initialize(dataDirectory); err != nil {
		log.Errorf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := models.Close(); err != nil {
			log.Errorf("Failed to close database: %v", err)
		}
	}()

	store := models.NewCatalogStore()
	ix := indexer.New(catalogPath, nil, store, true)
	if err := ix.Reload(); err != nil {
		log.Warnf("Initial catalog load failed: %v", err)
	}

	if refreshCron != "" {
		scheduler := indexer.NewScheduler(ix, refreshCron)
		if err := scheduler.Start(); err != nil {
			log.Warnf("Failed to start catalog refresh scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	engine := search.NewEngine(search.DefaultConfig(), nil, nil)

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		ServerHeader:  "Trainerdex",
		AppName:       fmt.Sprintf("Trainerdex %s", Version),
	})

	// Start API in its own goroutine
	go handlers.Initialize(app, store, engine, staticDir, port)

	// Block main thread to keep goroutines running
	select {}
}

func isSubcommand(name string) bool {
	switch name {
	case "convert", "search", "categorize", "version":
		return true
	}
	return false
}

func runSubcommand() {
	if catalogPath == "" {
		catalogPath = filepath.Join(dataDirectory, "catalog.json")
	}
	root := &cobra.Command{
		Use:           "trainerdex",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		cmd.NewConvertCmd(),
		cmd.NewSearchCmd(&catalogPath),
		cmd.NewCategorizeCmd(),
		cmd.NewVersionCmd(Version),
	)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
