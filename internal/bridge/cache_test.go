package bridge

import "testing"

func cacheTestState() *GameState {
	return NewGameState(quarterDeal())
}

func TestCacheMissOnEmpty(t *testing.T) {
	t.Parallel()
	c := NewCache()
	gs := cacheTestState()
	if hit, _ := c.Check(gs, North, 2); hit != 0 {
		t.Fatalf("Check on empty cache should miss, got %d", hit)
	}
}

func TestCacheUpdateHitThenCheck(t *testing.T) {
	t.Parallel()
	c := NewCache()
	gs := cacheTestState()
	mask := gs.CardsLeft()
	c.UpdateHit(gs, North, mask, 2)

	if hit, _ := c.Check(gs, North, 2); hit != 1 {
		t.Errorf("target <= recorded lower bound should hit achievable, got %d", hit)
	}
	if hit, _ := c.Check(gs, North, 1); hit != 1 {
		t.Errorf("a lower target should still be achievable, got %d", hit)
	}
}

func TestCacheUpdateMissThenCheck(t *testing.T) {
	t.Parallel()
	c := NewCache()
	gs := cacheTestState()
	mask := gs.CardsLeft()
	c.UpdateMiss(gs, North, mask, 2)

	if hit, _ := c.Check(gs, North, 2); hit != -1 {
		t.Errorf("target >= recorded upper bound should report unachievable, got %d", hit)
	}
	if hit, _ := c.Check(gs, North, 3); hit != -1 {
		t.Errorf("a higher target should also be unachievable, got %d", hit)
	}
}

// TestCacheMatchesOnSuitCountNotCardIdentity builds two GameStates with the
// same (tricksPlayed, leader, suit-length signature) bucket but different
// exact card identities outside the relevant suit, confirming that a bound
// stored against one applies to the other as long as every relevant card's
// played/unplayed status agrees: the signature pins the count distribution,
// the relevant mask pins down which specific cards the bound actually
// depended on, and the two together make the seat holding a remaining
// irrelevant card immaterial.
func TestCacheMatchesOnSuitCountNotCardIdentity(t *testing.T) {
	t.Parallel()
	dealA := NewDeal(1, South, NoTrump)
	dealB := NewDeal(1, South, NoTrump)
	for r := Rank(0); r < 3; r++ {
		dealA.Holder[NewCard(Clubs, r)] = North
		dealB.Holder[NewCard(Clubs, r)] = North
		dealA.Holder[NewCard(Diamonds, r)] = East
		dealB.Holder[NewCard(Diamonds, r+10-3)] = East // same count, different ranks
		dealA.Holder[NewCard(Hearts, r)] = South
		dealB.Holder[NewCard(Hearts, r+10-3)] = South
		dealA.Holder[NewCard(Spades, r)] = West
		dealB.Holder[NewCard(Spades, r+10-3)] = West
	}
	gsA := NewGameState(dealA)
	gsB := NewGameState(dealB)
	if gsA.SuitLengthSignature() != gsB.SuitLengthSignature() {
		t.Fatal("test setup: both deals should share a suit-length signature")
	}

	c := NewCache()
	c.UpdateHit(gsA, North, suitMask[Clubs], 2)

	if hit, _ := c.Check(gsB, North, 2); hit != 1 {
		t.Errorf("entry stored against clubs only should apply to any deal with the same bucket, got %d", hit)
	}
}

// TestCacheRelevantCardAlreadyPlayedBlocksMatch constructs two cache
// entries directly: one whose relevant card is still unplayed and one
// where it has been played, confirming Check only honors the entry whose
// cardsLeft snapshot agrees with the live position on every relevant bit.
func TestCacheRelevantCardAlreadyPlayedBlocksMatch(t *testing.T) {
	t.Parallel()
	gs := cacheTestState()
	top := NewCard(Spades, 2) // West's highest spade in quarterDeal
	relevant := cardBit(top)

	c := NewCache()
	key := cacheKeyFor(gs, North)
	// A stale entry recorded when the card had already been played
	// (cardsLeft excludes it), which must not match the live position
	// where the card is still outstanding.
	c.buckets[key] = append(c.buckets[key], cacheResult{
		relevant:   relevant,
		cardsLeft:  gs.CardsLeft().Remove(top),
		lowerBound: 2,
		upperBound: gs.TricksLeft() + 1,
	})
	if hit, _ := c.Check(gs, North, 2); hit != 0 {
		t.Fatalf("stale entry should not match once the relevant card's played status disagrees, got %d", hit)
	}

	c.buckets[key] = append(c.buckets[key], cacheResult{
		relevant:   relevant,
		cardsLeft:  gs.CardsLeft(),
		lowerBound: 2,
		upperBound: gs.TricksLeft() + 1,
	})
	if hit, _ := c.Check(gs, North, 2); hit != 1 {
		t.Fatalf("entry agreeing on the relevant card's status should match, got %d", hit)
	}
}

func TestCacheDifferentBucketsDoNotCollide(t *testing.T) {
	t.Parallel()
	c := NewCache()
	gs := cacheTestState()
	mask := gs.CardsLeft()
	c.UpdateHit(gs, North, mask, 2)

	if hit, _ := c.Check(gs, East, 2); hit != 0 {
		t.Errorf("a different leader is a different bucket, got %d", hit)
	}
}

func TestCacheClear(t *testing.T) {
	t.Parallel()
	c := NewCache()
	gs := cacheTestState()
	c.UpdateHit(gs, North, gs.CardsLeft(), 2)
	if c.Len() == 0 {
		t.Fatal("expected a stored entry before Clear")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", c.Len())
	}
	if hit, _ := c.Check(gs, North, 2); hit != 0 {
		t.Error("Check should miss after Clear")
	}
}

func TestCacheCloneIsIndependent(t *testing.T) {
	t.Parallel()
	c := NewCache()
	gs := cacheTestState()
	c.UpdateHit(gs, North, gs.CardsLeft(), 2)

	clone := c.Clone()
	clone.UpdateHit(gs, East, gs.CardsLeft(), 1)

	if c.Len() == clone.Len() {
		t.Error("mutating the clone should not affect the original cache")
	}
	if hit, _ := c.Check(gs, East, 1); hit != 0 {
		t.Error("original cache should not see entries added only to the clone")
	}
}
