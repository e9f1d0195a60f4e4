// Package happynum decides which positive integers are happy numbers,
// concurrently and with aggressive result reuse.
//
// A number is happy when repeatedly replacing it with the sum of the
// squares of its base-B digits reaches 1:
//
//	7 → 49 → 97 → 130 → 10 → 1   (happy)
//	2 → 4 → 16 → 37 → 58 → 89 → 145 → 42 → 20 → 4   (unhappy cycle)
//
// Every positive integer ends in one of those two outcomes, so the
// evaluation always terminates after a handful of digit-square steps.
//
// # Quick Start
//
//	cfg := happynum.DefaultConfig()
//	cfg.StopAt = 1_000_000
//	cfg.OutputResults = false
//
//	calc, err := happynum.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := calc.Run(ctx, runtime.NumCPU()); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(calc.IsHappy(7)) // true, straight from the memo
//
// # Permutation Skipping
//
// Happiness depends only on the multiset of digits: 123, 132, 213, 231,
// 312 and 321 all share the digit-square sum 14, so they share one
// answer. With SkipPermutations enabled the claim cursor hands out only
// numbers whose digits are already in ascending order (the smallest
// member of each permutation class), and recursive children are
// canonicalized the same way before they become cache keys. This shrinks
// both the work and the memo.
//
// # Concurrency Model
//
// A Calculator owns two independently locked pieces of shared state: the
// memo table, and the claim cursor with its milestone marker. Neither
// lock is held across the recursive evaluation, so two workers may
// redundantly compute the same key; both always produce the same
// boolean, making the racy insert benign. Workers are plain goroutines
// claiming candidates from the cursor until the configured bound; Run
// joins all of them before returning.
//
// Throughput rarely scales linearly with workers here: the cursor is a
// single guarded counter and the memo is a single guarded map, so lock
// contention grows with N. Use Benchmark to sweep worker counts and find
// the optimum for a given machine and bound.
package happynum
