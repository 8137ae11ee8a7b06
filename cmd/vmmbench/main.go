package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/oliverbestmann/vmm/internal/config"
	"github.com/pkg/profile"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	points := flag.Int("points", 0, "Number of random points to transform (default: 1000000)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			slog.Error("Failed to load config", slog.String("err", err.Error()))
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		Points:  *points,
		Workers: *workers,
		Profile: *profileMode,
	})

	switch cfg.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	default:
		slog.Error("Unknown profile mode", slog.String("profile", cfg.Profile))
		os.Exit(1)
	}

	tr, err := cfg.Transform()
	if err != nil {
		slog.Error("Invalid transform chain", slog.String("err", err.Error()))
		os.Exit(1)
	}

	slog.Debug("Transform chain resolved",
		slog.Int("steps", len(cfg.Chain)),
		slog.String("matrix", tr.String()),
	)

	res := run(tr, randomPoints(cfg.Points), cfg.Workers)

	slog.Info("Transformed points",
		slog.Int("points", res.Points),
		slog.Int("workers", cfg.Workers),
		slog.Duration("duration", res.Duration),
		slog.String("bounds", res.Bounds.String()),
	)
}
