// peerscore aggregates peer-review ratings against a goal hierarchy and
// prints a per-person weighted score report.
//
// Usage:
//
//	PEERSCORE_FOUNDERS="Tom,Jerry" peerscore goals.json ratings1.json ratings2.json
//
// Exactly one input file must be a goals document; the rest are ratings
// documents. Files matching neither shape are reported and skipped.
// Exits 1 when the founders roster or the goals document is missing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reviewkit/peerscore/infrastructure/loader"
	"github.com/reviewkit/peerscore/infrastructure/render"
	"github.com/reviewkit/peerscore/infrastructure/scoring"
	"github.com/reviewkit/peerscore/internal/application"
	"github.com/reviewkit/peerscore/pkg/logger"
)

func main() { os.Exit(run()) }

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Founders config is required before any file is read.
	cfg, err := application.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "peerscore: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "peerscore: %v\n", err)
		return 1
	}
	log := logger.Get()

	paths := os.Args[1:]
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: peerscore FILE...")
		return 1
	}

	aggregator, err := scoring.New("weighted_mean", scoring.Config{
		MainWeight:  cfg.MainWeight,
		RoundDigits: 2,
		NoDataScore: -1,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "peerscore: %v\n", err)
		return 1
	}

	runner := &application.Runner{
		Loader:     loader.New(application.NewDocumentClassifier()),
		Aggregator: aggregator,
		Renderer:   render.New(),
		Log:        log,
	}

	if err := runner.Run(ctx, cfg, paths, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "peerscore: %v\n", err)
		return 1
	}
	return 0
}
