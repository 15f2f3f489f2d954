package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"SketchBoard/internal/config"
	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"
	"SketchBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", config.Path(), "path to the TOML config file")
	logLevel := flag.String("log-level", "", "override the configured log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Bad log level: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	surface.SetLogger(logger)

	settings, err := cfg.Settings()
	if err != nil {
		log.Fatalf("Bad drawing settings: %v", err)
	}
	journal := state.NewJournal(logger)
	s, err := surface.New(settings, surface.WithJournal(journal))
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	logger.Info("starting", "config", *configPath, "session", journal.Site())
	board := ui.NewBoardWidget(s, journal)
	ui.RunApp(cfg, board)
	logger.Info("session ended", "ops", journal.Len(), "since_clear", journal.SinceClear())
}
