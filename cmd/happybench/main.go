// Command happybench times a full happy-number calculation and reports
// the elapsed wall-clock time. With -sweep it instead benchmarks a list
// of worker counts and reports the fastest.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/alexshd/happynum"
)

func main() {
	workers := flag.Int("workers", 1, "number of worker goroutines")
	stopAt := flag.Uint64("stop-at", 2_000_000_000, "highest candidate to claim")
	base := flag.Uint64("base", 10, "numeric base for digit math")
	sweep := flag.String("sweep", "", "comma-separated worker counts to benchmark (overrides -workers)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	cfg := happynum.DefaultConfig()
	cfg.Base = *base
	cfg.StopAt = *stopAt
	cfg.OutputResults = false
	cfg.MilestoneInterval = 10_000_000
	cfg.Logger = logger

	if *sweep != "" {
		if err := runSweep(cfg, *sweep); err != nil {
			slog.Error("sweep failed", "err", err)
			os.Exit(1)
		}
		return
	}

	calc, err := happynum.New(cfg)
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	slog.Info("starting calculation",
		"base", cfg.Base, "stop_at", cfg.StopAt, "workers", *workers)

	start := time.Now()
	if err := calc.Run(context.Background(), *workers); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("Elapsed time: %d milliseconds\n", elapsed.Milliseconds())

	stats := calc.Stats()
	slog.Info("finished",
		"claimed", stats.Claimed,
		"cache_hits", stats.Hits,
		"cache_misses", stats.Misses,
		"cached", stats.Cached)
}

// runSweep benchmarks each requested worker count and reports the best.
func runSweep(cfg happynum.Config, levels string) error {
	var counts []int
	for _, field := range strings.Split(levels, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 {
			return fmt.Errorf("invalid worker count %q", field)
		}
		counts = append(counts, n)
	}

	results, err := happynum.Benchmark(context.Background(), cfg, counts)
	if err != nil {
		return err
	}

	for _, r := range results {
		slog.Info("level complete",
			"workers", r.Workers,
			"elapsed_ms", r.Duration.Milliseconds(),
			"claimed", r.Claimed,
			"throughput", fmt.Sprintf("%.0f/s", r.Throughput))
	}
	fmt.Printf("Optimal worker count: %d\n", happynum.OptimalWorkers(results))
	return nil
}
