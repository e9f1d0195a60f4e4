package happynum

// sumOfDigitSquares accumulates the square of every base-B digit of n.
// This is the transformation that ultimately decides happiness. Pure,
// safe for concurrent use without locking.
func sumOfDigitSquares(n, base uint64) uint64 {
	var sum uint64
	for n > 0 {
		d := n % base
		sum += d * d
		n /= base
	}
	return sum
}

// digitsSorted reports whether the digits of n, read most-significant
// first, are non-decreasing. Such numbers are the canonical
// representatives of their digit-permutation classes; everything else is
// a permutation of a smaller representative.
func digitsSorted(n, base uint64) bool {
	prev := base // sentinel above any digit
	for n > 0 {
		d := n % base
		if d > prev {
			return false
		}
		prev = d
		n /= base
	}
	return true
}

// sortDigits rebuilds n with its digits in ascending order via a
// counting sort over digit frequencies. The result is the smallest
// member of n's digit-permutation class, never larger than n.
//
// Zero digits are dropped: they contribute nothing to a digit-square
// sum, so canonical keys are built from the nonzero digit counts alone
// (105 and 15 collapse onto the same key, and always carry the same
// happiness value).
func sortDigits(n, base uint64) uint64 {
	counts := make([]uint64, base)
	for n > 0 {
		counts[n%base]++
		n /= base
	}
	var result uint64
	for d := uint64(1); d < base; d++ {
		for i := uint64(0); i < counts[d]; i++ {
			result = result*base + d
		}
	}
	return result
}
