package happynum

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls a Calculator. All fields are fixed once New returns.
type Config struct {
	// CacheResults memoizes every computed result.
	CacheResults bool

	// SkipPermutations collapses digit-permutations onto one cache key
	// and keeps the claim cursor from handing out non-canonical values.
	SkipPermutations bool

	// Base for digit decomposition. Must be >= 2.
	Base uint64

	// StopAt is the highest candidate workers will claim. Counting
	// includes skipped values below it.
	StopAt uint64

	// OutputResults prints one line per evaluated candidate.
	OutputResults bool

	// MilestoneInterval announces progress each time the claimed
	// candidate crosses an interval boundary. Zero disables it.
	MilestoneInterval uint64

	// Output receives result and milestone lines. Defaults to os.Stdout.
	Output io.Writer

	// Logger receives operational debug lines. Nil disables them.
	Logger *slog.Logger
}

// DefaultConfig returns the standard setup: caching and permutation
// skipping on, base 10, no bound, results printed.
func DefaultConfig() Config {
	return Config{
		CacheResults:     true,
		SkipPermutations: true,
		Base:             10,
		StopAt:           math.MaxUint64,
		OutputResults:    true,
	}
}

// Calculator evaluates happiness for a contiguous range of candidates.
//
// Two independently locked pieces of shared state: the memo table, and
// the claim cursor with its milestone marker. Neither lock is held
// across the recursive evaluation, so two workers may redundantly
// compute the same key; both always arrive at the same boolean, so the
// race only affects insertion order.
//
// The cursor only advances; a Calculator is single-use. Construct a
// fresh one per run.
type Calculator struct {
	cfg Config

	cacheMu sync.Mutex // guards cache, hits, misses
	cache   map[uint64]bool
	hits    uint64
	misses  uint64

	cursorMu      sync.Mutex // guards next, lastMilestone, claimed, exhausted
	next          uint64
	lastMilestone uint64
	claimed       uint64
	exhausted     bool
}

// New validates cfg and seeds the memo table with the two terminal
// cases, 1 (happy) and 4 (unhappy).
func New(cfg Config) (*Calculator, error) {
	if cfg.Base < 2 {
		return nil, fmt.Errorf("happynum: base must be >= 2, got %d", cfg.Base)
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	c := &Calculator{cfg: cfg, next: 1}
	if cfg.CacheResults {
		c.cache = map[uint64]bool{1: true, 4: false}
	}
	return c, nil
}

// IsHappy reports whether n is happy: iterating "replace n with the sum
// of the squares of its base-B digits" reaches 1. Unhappy numbers fall
// into the cycle containing 4 instead. Every positive integer reaches
// one of the two terminals within a few steps, so the recursion stays
// shallow.
//
// The result is recorded under n's original key; the recursive child is
// canonicalized first when SkipPermutations is on, so permutation
// classes share one chain of cache entries.
func (c *Calculator) IsHappy(n uint64) bool {
	if happy, ok := c.lookup(n); ok {
		return happy
	}
	if n == 1 {
		return true
	}
	if n == 4 {
		return false
	}
	child := sumOfDigitSquares(n, c.cfg.Base)
	if c.cfg.SkipPermutations {
		child = sortDigits(child, c.cfg.Base)
	}
	happy := c.IsHappy(child)
	c.record(n, happy)
	return happy
}

// lookup checks the memo for n. One short critical section; the lock is
// released before any recursive work.
func (c *Calculator) lookup(n uint64) (happy, ok bool) {
	if !c.cfg.CacheResults {
		return false, false
	}
	c.cacheMu.Lock()
	happy, ok = c.cache[n]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	c.cacheMu.Unlock()
	return happy, ok
}

// record prints and memoizes a freshly computed result. Insert-if-absent:
// a racing worker may have stored the same key already, and both writers
// always carry the same value.
func (c *Calculator) record(n uint64, happy bool) {
	if c.cfg.OutputResults {
		if happy {
			fmt.Fprintf(c.cfg.Output, "%d is happy\n", n)
		} else {
			fmt.Fprintf(c.cfg.Output, "%d is not happy\n", n)
		}
	}
	if c.cfg.CacheResults {
		c.cacheMu.Lock()
		if _, ok := c.cache[n]; !ok {
			c.cache[n] = happy
		}
		c.cacheMu.Unlock()
	}
}

// claimNext hands out the smallest unclaimed candidate. With permutation
// skipping on, values whose digits are not already sorted are never
// claimed: each is a permutation of a smaller, claimable value. The
// scan, the milestone announcement and the cursor advance form a single
// critical section, so no two calls return the same value.
//
// Returns ok=false once the scan reaches the uint64 ceiling; the cursor
// stops there rather than wrapping to zero.
func (c *Calculator) claimNext() (n uint64, ok bool) {
	c.cursorMu.Lock()
	defer c.cursorMu.Unlock()
	if c.exhausted {
		return 0, false
	}
	for i := c.next; ; i++ {
		if !c.cfg.SkipPermutations || digitsSorted(i, c.cfg.Base) {
			if c.cfg.MilestoneInterval != 0 && i > c.lastMilestone+c.cfg.MilestoneInterval {
				// One interval step per claim, keeping the
				// marker in lockstep with the scan.
				c.lastMilestone += c.cfg.MilestoneInterval
				fmt.Fprintf(c.cfg.Output, "%d numbers calculated\n", c.lastMilestone)
			}
			if i == math.MaxUint64 {
				c.exhausted = true
			} else {
				c.next = i + 1
			}
			c.claimed++
			return i, true
		}
		if i == math.MaxUint64 {
			c.exhausted = true
			return 0, false
		}
	}
}

// workerLoop claims and evaluates candidates until the claimed value
// reaches the configured bound or the context is canceled.
func (c *Calculator) workerLoop(ctx context.Context) error {
	for {
		n, ok := c.claimNext()
		if !ok {
			return nil
		}
		c.IsHappy(n)
		if n >= c.cfg.StopAt {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// Start launches the worker goroutines and returns a wait function that
// blocks until every worker has finished. workers <= 0 selects
// runtime.NumCPU(). The wait function always joins all workers, so
// elapsed time measured around it covers the full run.
func (c *Calculator) Start(ctx context.Context, workers int) (wait func() error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug("starting workers",
			"workers", workers, "base", c.cfg.Base, "stop_at", c.cfg.StopAt)
	}
	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			return c.workerLoop(ctx)
		})
	}
	return eg.Wait
}

// Run evaluates candidates with the given number of workers and returns
// once every worker has finished.
func (c *Calculator) Run(ctx context.Context, workers int) error {
	return c.Start(ctx, workers)()
}
