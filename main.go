package main

import (
	"errors"
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal("Error: ", err)
	}

	// run returns before exiting so the log file is closed on every path
	if err := run(cfg); err != nil {
		log.Fatal("Error running TUI: ", err)
	}
}

func run(cfg Config) error {
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.WithField("api", cfg.APIURL).WithField("theme", cfg.Theme).Info("starting book finder")

	client := NewClient(cfg, logger)
	m := initialModel(cfg, client, logger, NewBurst(nil))

	// tea.WithAltScreen() gives us a clean terminal canvas to work with
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.WithError(err).Error("tui exited")
		return err
	}
	return nil
}
