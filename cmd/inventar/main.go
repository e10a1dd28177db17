package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/inventar/internal/cli"
	"github.com/Makepad-fr/inventar/internal/config"
	"github.com/Makepad-fr/inventar/internal/inventory"
	"github.com/Makepad-fr/inventar/internal/logging"
	"github.com/Makepad-fr/inventar/internal/prompt"
	"github.com/Makepad-fr/inventar/internal/store"
	"github.com/Makepad-fr/inventar/internal/tui"
	"github.com/Makepad-fr/inventar/internal/ui"
)

const logFileName = "inventar.log"

func main() {
	os.Exit(run())
}

func run() int {
	// .env first, so flags below can still override it
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	cfg := config.LoadFromEnv()

	// Root flags (apply to every subcommand)
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the inventory")
	flag.StringVar(&cfg.Store, "store", cfg.Store, "storage backend: json, sqlite or memory")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: classic, neon or mono")
	flag.Usage = func() { cli.PrintHelp(os.Stderr); flag.PrintDefaults() }
	flag.Parse()
	args := flag.Args()

	ui.SetTheme(cfg.Theme)

	logger, closeLog := initializeLogging(cfg, cli.IsInteractive(args))
	defer closeLog()
	logging.SetDefault(logger)

	backend, err := store.Open(cfg.StoreConfig())
	if err != nil {
		ui.Fail(os.Stderr, "store: "+err.Error())
		return 1
	}
	persist := store.NewPersistence(backend, logger)
	defer persist.Close()

	inv := inventory.New(persist.Load(),
		inventory.WithPersister(persist),
		inventory.WithLogger(logger),
	)

	return cli.Run(args, &cli.App{
		Inv:         inv,
		Prompt:      prompt.NewTerminal(os.Stdin, os.Stdout),
		Out:         os.Stdout,
		Err:         os.Stderr,
		Interactive: tui.Run,
	})
}

// initializeLogging builds the logger. The full-screen UI owns the terminal,
// so terminal-bound logs go to a file in the data directory instead.
func initializeLogging(cfg *config.Config, interactive bool) (*logging.Logger, func()) {
	if !interactive || !cfg.Logging.WritesToTerminal() {
		return logging.NewLogger(cfg.Logging)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return logging.NewLoggerWithWriter(cfg.Logging, io.Discard), func() {}
	}
	f, err := tea.LogToFile(filepath.Join(cfg.DataDir, logFileName), "inventar")
	if err != nil {
		return logging.NewLoggerWithWriter(cfg.Logging, io.Discard), func() {}
	}
	return logging.NewLoggerWithWriter(cfg.Logging, f), func() { f.Close() }
}
