package bridge

// TrickState tracks the in-progress trick: who led, who currently wins it,
// and whether the lead has been ruffed.
type TrickState struct {
	Leader      Player
	Winner      Player
	WinningCard Card
	LedSuit     Suit
	WinningSuit Suit
	// RankTrick is true once another card of the current winning suit has
	// been played since that suit took the lead (by the lead itself or by
	// a ruff), i.e. the current winner was decided by comparing ranks; an
	// over-ruff makes it true again. It is false right after the lead,
	// after a ruff no later trump has met, and when nobody else played the
	// winning suit. Used to decide whether the winning card's rank gets
	// promoted into the cache mask.
	RankTrick bool
}

// NewTrick starts a trick with leader's opening card.
func NewTrick(leader Player, card Card) TrickState {
	return TrickState{
		Leader:      leader,
		Winner:      leader,
		WinningCard: card,
		LedSuit:     card.Suit(),
		WinningSuit: card.Suit(),
		RankTrick:   false,
	}
}

// Play records a card played by pl and updates the running winner.
// Cards rank within a suit by their raw numeric value since card =
// rank*4+suit: for a fixed suit, larger rank always compares greater.
func (t *TrickState) Play(pl Player, card Card, trumps Suit) {
	s := card.Suit()
	switch {
	case s == t.WinningSuit:
		t.RankTrick = true
		if card > t.WinningCard {
			t.WinningCard = card
			t.Winner = pl
		}
	case s == trumps:
		t.RankTrick = false
		t.WinningCard = card
		t.WinningSuit = trumps
		t.Winner = pl
	}
}

// WouldWin reports whether playing card would win the trick for pl's
// partnership — true if partner already holds the lead, otherwise
// whether this specific card beats the current winner.
func (t *TrickState) WouldWin(pl Player, card Card, trumps Suit) bool {
	if t.Winner.Partnership() == pl.Partnership() {
		return true
	}
	s := card.Suit()
	switch {
	case s == t.WinningSuit:
		return card > t.WinningCard
	case s == trumps:
		return true
	default:
		return false
	}
}
