package bridge

// cacheKey buckets positions by how many tricks have been played, who is
// on lead, and the suit-length signature (spec.md 4.4): the coarse
// description shared by every deal with the same per-seat suit counts,
// regardless of which exact cards make up those suits.
type cacheKey struct {
	tricksPlayed int
	leader       Player
	signature    uint64
}

// cacheResult is one stored bound. relevant marks the cards whose
// played/unplayed status the bound actually depends on; cardsLeft is a
// snapshot, at store time, of which cards (among the relevant ones) were
// still unplayed. A later position in the same bucket reuses the bound
// only if it agrees with that snapshot on every relevant card — the
// specific seat holding a remaining card doesn't matter, only whether it
// has been played, because the suit-length signature already pins down
// how the remaining relevant cards of each suit are distributed.
type cacheResult struct {
	relevant   CardSet
	cardsLeft  CardSet
	lowerBound int // largest confirmed-achievable target
	upperBound int // smallest confirmed-unachievable target
}

// Cache memoizes search results, mirroring cache_t in the original
// analyzer: a map from (tricks played, leader, suit-length signature) to
// a list of candidate bounds, checked most recently stored first.
type Cache struct {
	buckets map[cacheKey][]cacheResult
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{buckets: make(map[cacheKey][]cacheResult)}
}

func cacheKeyFor(gs *GameState, pl Player) cacheKey {
	return cacheKey{
		tricksPlayed: gs.NPlayed() / 4,
		leader:       pl,
		signature:    gs.SuitLengthSignature(),
	}
}

// Check looks for a stored bound that resolves whether target tricks are
// achievable from this position. hit is +1 (achievable), -1 (not
// achievable) or 0 (no applicable entry); when hit is nonzero, mask is the
// relevant-card set of the matching entry, meant to be OR'd into the
// caller's own accumulating mask.
func (c *Cache) Check(gs *GameState, pl Player, target int) (hit int, mask CardSet) {
	results := c.buckets[cacheKeyFor(gs, pl)]
	cardsLeft := gs.CardsLeft()
	for i := len(results) - 1; i >= 0; i-- {
		r := &results[i]
		if r.relevant&r.cardsLeft != r.relevant&cardsLeft {
			continue
		}
		if target <= r.lowerBound {
			return +1, r.relevant
		}
		if target >= r.upperBound {
			return -1, r.relevant
		}
	}
	return 0, 0
}

// UpdateHit records that target tricks were proven achievable, relevant on
// the cards in mask.
func (c *Cache) UpdateHit(gs *GameState, pl Player, mask CardSet, target int) {
	c.store(gs, pl, cacheResult{
		relevant:   mask,
		cardsLeft:  gs.CardsLeft(),
		lowerBound: target,
		upperBound: gs.TricksLeft() + 1,
	})
}

// UpdateMiss records that target tricks were proven unachievable, relevant
// on the cards in mask.
func (c *Cache) UpdateMiss(gs *GameState, pl Player, mask CardSet, target int) {
	c.store(gs, pl, cacheResult{
		relevant:   mask,
		cardsLeft:  gs.CardsLeft(),
		lowerBound: 0,
		upperBound: target,
	})
}

func (c *Cache) store(gs *GameState, pl Player, r cacheResult) {
	k := cacheKeyFor(gs, pl)
	c.buckets[k] = append(c.buckets[k], r)
}

// Clear discards every stored entry.
func (c *Cache) Clear() {
	c.buckets = make(map[cacheKey][]cacheResult)
}

// Clone returns an independent copy sharing no mutable state, used to give
// each worker of a parallel analysis its own cache seeded from a common
// starting point.
func (c *Cache) Clone() *Cache {
	cp := &Cache{buckets: make(map[cacheKey][]cacheResult, len(c.buckets))}
	for k, v := range c.buckets {
		cp.buckets[k] = append([]cacheResult(nil), v...)
	}
	return cp
}

// Len returns the total number of stored entries, for diagnostics.
func (c *Cache) Len() int {
	n := 0
	for _, results := range c.buckets {
		n += len(results)
	}
	return n
}
