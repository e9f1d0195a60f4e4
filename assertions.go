package happynum

import "testing"

// referenceIsHappy is the definition-level check: iterate the digit
// square sum until reaching one of the two terminals. Requires n > 0.
func referenceIsHappy(n, base uint64) bool {
	for n != 1 && n != 4 {
		n = sumOfDigitSquares(n, base)
	}
	return n == 1
}

// AssertMatchesDefinition verifies IsHappy against the reference
// iterative definition for every value in [lo, hi].
func AssertMatchesDefinition(t *testing.T, c *Calculator, lo, hi uint64) {
	t.Helper()

	for n := lo; n <= hi; n++ {
		want := referenceIsHappy(n, c.cfg.Base)
		if got := c.IsHappy(n); got != want {
			t.Errorf("IsHappy(%d) = %v, reference definition says %v", n, got, want)
		}
	}
}

// AssertPermutationInvariance verifies that digit-permutations of the
// same number agree on happiness.
func AssertPermutationInvariance(t *testing.T, c *Calculator, pairs [][2]uint64) {
	t.Helper()

	for _, pair := range pairs {
		a, b := c.IsHappy(pair[0]), c.IsHappy(pair[1])
		if a != b {
			t.Errorf("permutations disagree: IsHappy(%d) = %v but IsHappy(%d) = %v",
				pair[0], a, pair[1], b)
		}
	}
}

// AssertCanonicalForm verifies the canonicalization laws for each value:
// sortDigits is idempotent, never exceeds its input, and always yields a
// number whose digits pass the sorted check.
func AssertCanonicalForm(t *testing.T, base uint64, values []uint64) {
	t.Helper()

	for _, n := range values {
		sorted := sortDigits(n, base)
		if sorted > n {
			t.Errorf("sortDigits(%d) = %d, exceeds input", n, sorted)
		}
		if again := sortDigits(sorted, base); again != sorted {
			t.Errorf("sortDigits not idempotent: sortDigits(%d) = %d, re-sorting gives %d",
				n, sorted, again)
		}
		if !digitsSorted(sorted, base) {
			t.Errorf("sortDigits(%d) = %d fails the sorted check", n, sorted)
		}
	}
}

// AssertClaimUniqueness drains a fresh cursor up to limit and verifies
// the claim invariant: every canonical candidate at most limit is
// returned exactly once, and nothing else is.
func AssertClaimUniqueness(t *testing.T, cfg Config, limit uint64) {
	t.Helper()

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	seen := make(map[uint64]int)
	for {
		n, ok := c.claimNext()
		if !ok || n > limit {
			break
		}
		seen[n]++
	}

	for n := uint64(1); n <= limit; n++ {
		claimable := !cfg.SkipPermutations || digitsSorted(n, cfg.Base)
		switch {
		case claimable && seen[n] != 1:
			t.Errorf("claimable value %d returned %d times, want exactly once", n, seen[n])
		case !claimable && seen[n] != 0:
			t.Errorf("skippable value %d was claimed %d times, want never", n, seen[n])
		}
	}
}
