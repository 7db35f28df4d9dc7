// Package main implements dealsctl, a terminal client that loads the
// restaurant feed once and prints either the deals available at a time of day
// or the peak window with its bucket histogram.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"restaurant-deals/internal/domain/availability"
	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/internal/infra/snapshot"
	"restaurant-deals/internal/infra/upstream"
	"restaurant-deals/internal/pkg/clock"
	"restaurant-deals/internal/pkg/config"
	"restaurant-deals/internal/report"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

var (
	feedURL  = flag.String("url", "", "Restaurant feed URL (or set UPSTREAM_URL)")
	feedFile = flag.String("file", "", "Read the feed from a local JSON file instead of --url")
	at       = flag.String("at", "", "Time of day (HH:MM) to list available deals for; omit to show the peak window")
	timeout  = flag.Duration("timeout", 30*time.Second, "Overall timeout for loading the feed")
	attempts = flag.Uint("attempts", 3, "Fetch attempts for transient upstream failures")
	noColor  = flag.Bool("no-color", false, "Disable colored output")
	verbose  = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	// A .env file is optional here, unlike the server.
	_ = godotenv.Load()

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *noColor {
		color.NoColor = true
	}

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, "dealsctl:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var query *timeofday.TimeOfDay
	if *at != "" {
		t, err := timeofday.Parse24h(*at)
		if err != nil {
			return fmt.Errorf("--at: %w", err)
		}
		query = &t
	}

	source, err := newSource(logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store := snapshot.NewStore()
	cfg := config.Config{}
	if err := snapshot.NewRefresher(cfg, source, store, logger).Load(ctx); err != nil {
		return err
	}
	snap, err := store.Current()
	if err != nil {
		return err
	}
	logger.Debug("Snapshot loaded", "source", source.Name(), "restaurants", snap.Len(), "deals", snap.DealCount())

	if query != nil {
		open := availability.OpenRestaurants(snap, *query)
		return report.Deals(os.Stdout, *query, open, availability.FindAvailableDeals(snap, *query))
	}

	totals := availability.BucketTotals(snap)
	peak := availability.FindPeakWindow(snap)
	if snap.Len() == 0 {
		totals = nil
	}
	return report.Histogram(os.Stdout, totals, peak)
}

func newSource(logger *slog.Logger) (snapshot.Source, error) {
	clk := clock.NewRealClock()
	if *feedFile != "" {
		return upstream.NewFileSource(*feedFile, clk, logger), nil
	}

	url := *feedURL
	if url == "" {
		url = os.Getenv("UPSTREAM_URL")
	}
	if url == "" {
		return nil, fmt.Errorf("one of --url, --file or UPSTREAM_URL is required")
	}

	cfg := config.Config{
		Upstream: config.UpstreamConfig{
			URL:           url,
			Timeout:       10 * time.Second,
			RetryAttempts: *attempts,
			RetryDelay:    500 * time.Millisecond,
		},
	}
	return upstream.NewClient(cfg, clk, logger), nil
}
