package bridge

import "math/bits"

// Move is one candidate play: the representative card of an equivalence
// class, plus the mask of every card in that class. The search applies
// only the representative; Equivalents lets callers propagate a result to
// every card that would have produced the identical outcome.
type Move struct {
	Card        Card
	Equivalents CardSet
}

// groupSuit partitions cards (already restricted to a single suit) into
// equivalence-class groups, ascending by rank, coalescing runs of cards
// that are direct neighbors in the rank-equivalence chain into a single
// group carrying the OR of their bits.
func groupSuit(cards CardSet, re *RankEquivalence) []Move {
	var groups []Move
	var last Card
	have := false
	eachCard(cards, func(c Card) {
		if !have || re.NextHigher(last) != c {
			groups = append(groups, Move{Card: c, Equivalents: cardBit(c)})
		} else {
			groups[len(groups)-1].Equivalents |= cardBit(c)
		}
		last = c
		have = true
	})
	return groups
}

// groupsBySuit returns groupSuit results for all four plain suits of hand.
func groupsBySuit(hand CardSet, re *RankEquivalence) [4][]Move {
	var out [4][]Move
	for s := Clubs; s <= Spades; s++ {
		out[s] = groupSuit(hand&suitMask[s], re)
	}
	return out
}

// firstIndexBeating returns the index of the cheapest group in g (ascending)
// whose card beats winningCard, or len(g) if none does.
func firstIndexBeating(g []Move, winningCard Card) int {
	i := 0
	for i < len(g) && winningCard > g[i].Card {
		i++
	}
	return i
}

func reversed(g []Move) []Move {
	out := make([]Move, len(g))
	for i, m := range g {
		out[len(g)-1-i] = m
	}
	return out
}

// GenerateLeaderMoves produces the ordered candidate list for the first
// player to a trick: the highest equivalence class in each suit, then the
// lowest in each suit, then interior classes, suits visited C,D,H,S within
// each band.
func GenerateLeaderMoves(gs *GameState, pl Player, re *RankEquivalence) []Move {
	groups := groupsBySuit(gs.Hand(pl), re)

	var moves []Move
	for s := Clubs; s <= Spades; s++ {
		if n := len(groups[s]); n > 0 {
			moves = append(moves, groups[s][n-1])
		}
	}
	for s := Clubs; s <= Spades; s++ {
		if len(groups[s]) > 1 {
			moves = append(moves, groups[s][0])
		}
	}
	for s := Clubs; s <= Spades; s++ {
		for i := 1; i < len(groups[s])-1; i++ {
			moves = append(moves, groups[s][i])
		}
	}
	return moves
}

// cannotFollowMoves is the shared ordering policy for a player who cannot
// follow the led suit: a low ruff first (if holding trumps), then a low
// discard from each non-trump suit, then higher trumps, then higher
// discards. Used by second and third hand; fourth hand has its own
// overruff-aware variant (see cannotFollowMovesFourth).
func cannotFollowMoves(gs *GameState, pl Player, trumps Suit, re *RankEquivalence) []Move {
	groups := groupsBySuit(gs.Hand(pl), re)

	var moves []Move
	if trumps != NoTrump && len(groups[trumps]) > 0 {
		moves = append(moves, groups[trumps][0])
	}
	for s := Clubs; s <= Spades; s++ {
		if s == trumps {
			continue
		}
		if len(groups[s]) > 0 {
			moves = append(moves, groups[s][0])
		}
	}
	if trumps != NoTrump {
		for i := 1; i < len(groups[trumps]); i++ {
			moves = append(moves, groups[trumps][i])
		}
	}
	for s := Clubs; s <= Spades; s++ {
		if s == trumps {
			continue
		}
		for i := 1; i < len(groups[s]); i++ {
			moves = append(moves, groups[s][i])
		}
	}
	return moves
}

// GenerateSecondHandMoves produces the ordered candidate list for the
// second player to a trick.
func GenerateSecondHandMoves(gs *GameState, pl Player, trick TrickState, re *RankEquivalence) []Move {
	suitCards := gs.Hand(pl) & suitMask[trick.LedSuit]
	if suitCards.Empty() {
		return cannotFollowMoves(gs, pl, gs.Trumps, re)
	}

	g := groupSuit(suitCards, re)
	n := len(g)
	moves := make([]Move, 0, n)
	moves = append(moves, g[n-1])
	if n > 1 {
		moves = append(moves, g[0])
	}
	for i := n - 2; i >= 1; i-- {
		moves = append(moves, g[i])
	}
	return moves
}

// GenerateThirdHandMoves produces the ordered candidate list for the third
// player to a trick.
func GenerateThirdHandMoves(gs *GameState, pl Player, trick TrickState, re *RankEquivalence) []Move {
	suitCards := gs.Hand(pl) & suitMask[trick.LedSuit]
	if suitCards.Empty() {
		return cannotFollowMoves(gs, pl, gs.Trumps, re)
	}

	g := groupSuit(suitCards, re)
	n := len(g)

	if g[n-1].Card < trick.WinningCard || trick.WinningSuit != trick.LedSuit {
		return g
	}

	fourthHand := gs.Hand(pl.Next()) & suitMask[trick.LedSuit]
	if fourthHand.Empty() {
		if trick.Winner == pl.Partner() {
			return g
		}
		winner := firstIndexBeating(g, trick.WinningCard)
		moves := make([]Move, 0, n)
		moves = append(moves, g[winner])
		moves = append(moves, g[:winner]...)
		moves = append(moves, g[winner+1:]...)
		return moves
	}

	fourthHigh := highestCard(fourthHand)
	if trick.Winner == pl.Partner() && trick.WinningCard > fourthHigh {
		return g
	}
	if g[n-1].Card > fourthHigh {
		winner := firstIndexBeating(g, trick.WinningCard)
		moves := make([]Move, 0, n)
		for i := winner; i >= 0; i-- {
			moves = append(moves, g[i])
		}
		moves = append(moves, g[winner+1:]...)
		return moves
	}

	topCount := 0
	for topCount < n && g[n-1-topCount].Card >= trick.WinningCard {
		topCount++
	}
	moves := make([]Move, 0, n)
	moves = append(moves, reversed(g[n-topCount:])...)
	moves = append(moves, g[:n-topCount]...)
	return moves
}

// GenerateFourthHandMoves produces the ordered candidate list for the
// fourth (last) player to a trick.
func GenerateFourthHandMoves(gs *GameState, pl Player, trick TrickState, re *RankEquivalence) []Move {
	suitCards := gs.Hand(pl) & suitMask[trick.LedSuit]
	if suitCards.Empty() {
		return cannotFollowMovesFourth(gs, pl, trick, re)
	}

	g := groupSuit(suitCards, re)
	n := len(g)

	if trick.WinningSuit != trick.LedSuit {
		return g
	}

	winner := firstIndexBeating(g, trick.WinningCard)
	moves := make([]Move, 0, n)
	start := 0
	if trick.Winner == pl.Partner() && winner > 0 {
		moves = append(moves, g[0])
		start = 1
	}
	if winner < n {
		moves = append(moves, g[winner])
	}
	for i := winner + 1; i < n; i++ {
		moves = append(moves, g[i])
	}
	for i := start; i < winner; i++ {
		moves = append(moves, g[i])
	}
	return moves
}

// cannotFollowMovesFourth is fourth hand's variant of the cannot-follow
// policy: the cheapest over-ruff when the trick is already a ruff,
// otherwise a plain low ruff; then the shared low-discard/higher-ruff/
// higher-discard ordering.
func cannotFollowMovesFourth(gs *GameState, pl Player, trick TrickState, re *RankEquivalence) []Move {
	trumps := gs.Trumps
	groups := groupsBySuit(gs.Hand(pl), re)

	var moves []Move
	ruffer := -1
	if trumps != NoTrump && len(groups[trumps]) > 0 {
		if trick.WinningSuit == trumps {
			for i, m := range groups[trumps] {
				if m.Card > trick.WinningCard {
					moves = append(moves, m)
					ruffer = i
					break
				}
			}
		} else {
			moves = append(moves, groups[trumps][0])
			ruffer = 0
		}
	}

	for s := Clubs; s <= Spades; s++ {
		if s == trumps {
			continue
		}
		if len(groups[s]) > 0 {
			moves = append(moves, groups[s][0])
		}
	}

	if trumps != NoTrump {
		for i, m := range groups[trumps] {
			if i != ruffer {
				moves = append(moves, m)
			}
		}
	}

	for s := Clubs; s <= Spades; s++ {
		if s == trumps {
			continue
		}
		for i := 1; i < len(groups[s]); i++ {
			moves = append(moves, groups[s][i])
		}
	}
	return moves
}

// highestCard returns the highest-ranked card in a single-suit mask; cs
// must not be empty.
func highestCard(cs CardSet) Card {
	return Card(bits.Len64(uint64(cs)) - 1)
}
