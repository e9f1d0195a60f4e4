package happynum

import (
	"context"
	"fmt"
	"time"
)

// Result contains measurements from one complete run at a fixed worker
// count.
type Result struct {
	Workers    int           // Number of concurrent workers
	Duration   time.Duration // Wall-clock time for the full run
	Claimed    uint64        // Candidates handed out by the cursor
	Throughput float64       // Claimed candidates per second
	Stats      Stats         // Final counter snapshot
}

// Benchmark times complete runs of cfg at each worker count in levels.
// The claim cursor is single-use, so every level gets a fresh
// Calculator; results are comparable because each run covers the same
// candidate range.
//
// Worker counts above GOMAXPROCS measure scheduler overhead rather than
// lock contention; sweep within the machine's CPU count for meaningful
// numbers.
func Benchmark(ctx context.Context, cfg Config, levels []int) ([]Result, error) {
	results := make([]Result, 0, len(levels))
	for _, workers := range levels {
		result, err := benchmarkAtLevel(ctx, cfg, workers)
		if err != nil {
			return nil, fmt.Errorf("failed at %d workers: %w", workers, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// benchmarkAtLevel runs one full calculation and measures it.
func benchmarkAtLevel(ctx context.Context, cfg Config, workers int) (Result, error) {
	c, err := New(cfg)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	if err := c.Run(ctx, workers); err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	stats := c.Stats()
	return Result{
		Workers:    workers,
		Duration:   elapsed,
		Claimed:    stats.Claimed,
		Throughput: float64(stats.Claimed) / elapsed.Seconds(),
		Stats:      stats,
	}, nil
}

// OptimalWorkers returns the worker count with the highest measured
// throughput, or 0 for an empty result set.
func OptimalWorkers(results []Result) int {
	best := 0
	bestThroughput := 0.0
	for _, r := range results {
		if r.Throughput > bestThroughput {
			best = r.Workers
			bestThroughput = r.Throughput
		}
	}
	return best
}
