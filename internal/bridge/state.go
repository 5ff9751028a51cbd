package bridge

// GameState is the mutable, undo-stackable position of an in-progress
// deal: remaining cards per player, a packed per-player-per-suit length
// count, and a LIFO stack of plays so undo is exact and allocation-free.
type GameState struct {
	Trumps Suit

	nCardsEach int // original hand size

	nPlayed    int
	cardsPlayed [52]Card
	whoPlayed   [52]Player

	cardsLeft  CardSet
	handMask   [4]CardSet
	suitLength uint64 // 16 nibbles, nibble (4*player+suit) = remaining count
}

// NewGameState builds a GameState for a deal with no cards played yet;
// callers replay any earlier plays with Play.
func NewGameState(deal Deal) *GameState {
	gs := &GameState{Trumps: deal.Trumps}
	nDealt := 0
	for c := 0; c < 52; c++ {
		pl := deal.Holder[c]
		if pl == NoPlayer {
			continue
		}
		card := Card(c)
		gs.cardsLeft = gs.cardsLeft.Add(card)
		gs.handMask[pl] = gs.handMask[pl].Add(card)
		gs.suitLength += 1 << nibbleShift(pl, card.Suit())
		nDealt++
	}
	gs.nCardsEach = nDealt / 4
	return gs
}

func nibbleShift(pl Player, s Suit) uint {
	return 4 * uint(4*int(pl)+int(s))
}

// NCardsEach returns the original per-player hand size.
func (gs *GameState) NCardsEach() int { return gs.nCardsEach }

// NPlayed returns the total number of cards played so far.
func (gs *GameState) NPlayed() int { return gs.nPlayed }

// TricksLeft returns the number of tricks remaining to be played.
func (gs *GameState) TricksLeft() int {
	return gs.nCardsEach - gs.nPlayed/4
}

// CardsLeft returns the mask of all dealt but not yet played cards.
func (gs *GameState) CardsLeft() CardSet { return gs.cardsLeft }

// Hand returns the remaining cards held by pl.
func (gs *GameState) Hand(pl Player) CardSet { return gs.handMask[pl] }

// SuitLength returns the number of cards of suit s remaining in pl's hand.
func (gs *GameState) SuitLength(pl Player, s Suit) int {
	return int((gs.suitLength >> nibbleShift(pl, s)) & 0xF)
}

// SuitLengthSignature is the full 64-bit packed suit-length distribution,
// used as the coarse cache key (spec.md 4.4): far fewer bits than the
// exact hand distribution, so many distinct deals share a bucket.
func (gs *GameState) SuitLengthSignature() uint64 { return gs.suitLength }

// Play applies a card played by pl, pushing it onto the undo stack.
func (gs *GameState) Play(c Card, pl Player) {
	gs.cardsPlayed[gs.nPlayed] = c
	gs.whoPlayed[gs.nPlayed] = pl
	gs.nPlayed++
	gs.handMask[pl] = gs.handMask[pl].Remove(c)
	gs.cardsLeft = gs.cardsLeft.Remove(c)
	gs.suitLength -= 1 << nibbleShift(pl, c.Suit())
}

// Unplay reverses the most recent Play. Apply/undo must be strictly LIFO.
func (gs *GameState) Unplay() {
	gs.nPlayed--
	c := gs.cardsPlayed[gs.nPlayed]
	pl := gs.whoPlayed[gs.nPlayed]
	gs.cardsPlayed[gs.nPlayed] = 0
	gs.whoPlayed[gs.nPlayed] = 0
	gs.handMask[pl] = gs.handMask[pl].Add(c)
	gs.cardsLeft = gs.cardsLeft.Add(c)
	gs.suitLength += 1 << nibbleShift(pl, c.Suit())
}

// LastPlays returns the cards played in the trick that just completed
// (the four most recent plays). Only valid immediately after the fourth
// card of a trick has been applied.
func (gs *GameState) LastPlays() [4]Card {
	var out [4]Card
	copy(out[:], gs.cardsPlayed[gs.nPlayed-4:gs.nPlayed])
	return out
}

// TrickCardsSoFar returns the cards played in the trick currently in
// progress, in play order (0 to 3 cards).
func (gs *GameState) TrickCardsSoFar() []Card {
	start := gs.nPlayed - gs.nPlayed%4
	return gs.cardsPlayed[start:gs.nPlayed]
}
