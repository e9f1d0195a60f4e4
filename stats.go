package happynum

// Stats is a snapshot of a Calculator's runtime counters.
//
// Hit ratio (Hits / (Hits + Misses)) is the quickest way to see how much
// work the memo and permutation skipping are saving.
type Stats struct {
	Hits    uint64 // memo lookups that found an entry
	Misses  uint64 // memo lookups that found nothing
	Claimed uint64 // candidates handed out by the cursor
	Cached  uint64 // entries currently in the memo
}

// Stats returns a consistent snapshot of each counter. Safe to call
// while workers are running; the two counter groups are read under
// their own locks.
func (c *Calculator) Stats() Stats {
	var s Stats
	c.cacheMu.Lock()
	s.Hits = c.hits
	s.Misses = c.misses
	s.Cached = uint64(len(c.cache))
	c.cacheMu.Unlock()

	c.cursorMu.Lock()
	s.Claimed = c.claimed
	c.cursorMu.Unlock()
	return s
}
