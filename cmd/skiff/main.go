// Package main is the entry point for the skiff editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avray/skiff/internal/app"
	"github.com/avray/skiff/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	// Finalizing the screen unblocks the event poll, so the loop exits
	// cleanly and the terminal is restored before the process dies.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.Shutdown()
	}()

	if err := application.Run(term); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to the configuration file")
	flag.StringVar(&opts.RCPath, "rc", "", "Path to the init.lua startup script")
	flag.StringVar(&opts.LogFile, "log", "", "Write a session log to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.IntVar(&opts.PageSize, "page-size", 0, "Viewport height in lines (0 follows the terminal)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Skiff - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: skiff [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  skiff                 Open an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  skiff notes.txt       Open a file\n")
		fmt.Fprintf(os.Stderr, "  skiff -log skiff.log  Open with a session log\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("skiff %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// An empty level defers to the config file.
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if opts.PageSize < 0 {
		fmt.Fprintf(os.Stderr, "Error: page size must not be negative\n")
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected at most one file, got %d\n", len(args))
		os.Exit(1)
	}
	if len(args) == 1 {
		opts.Path = args[0]
	}

	return opts
}
