package bridge

// RankEquivalence tracks, for each card, the next-higher and next-lower
// card of the same suit that is still unplayed in any hand. Two untaken
// cards are equivalent iff they are direct neighbors in this chain: no
// card of intermediate rank remains outstanding, so playing one is
// strategically indistinguishable from playing the other.
//
// Updates are deferred to trick boundaries (the search plays a trick's
// cards into a cloned chain only at the fourth card; see searchFourth):
// moving them mid-trick would let second/third/fourth hand treat ranks as
// equivalent before they've actually been distinguished by the play.
type RankEquivalence struct {
	nextHigher [52]Card
	nextLower  [52]Card
}

// NewRankEquivalence returns a chain with every card linked to its
// numerical neighbor in the same suit; the deuce and ace self-loop.
func NewRankEquivalence() *RankEquivalence {
	re := &RankEquivalence{}
	re.Reset()
	return re
}

// Reset relinks every card to its numerical neighbor, discarding any prior plays.
func (re *RankEquivalence) Reset() {
	for s := Clubs; s <= Spades; s++ {
		deuce := NewCard(s, 0)
		ace := NewCard(s, 12)
		re.nextLower[deuce] = deuce
		re.nextHigher[deuce] = NewCard(s, 1)
		for r := Rank(1); r < 12; r++ {
			c := NewCard(s, r)
			re.nextLower[c] = NewCard(s, r-1)
			re.nextHigher[c] = NewCard(s, r+1)
		}
		re.nextLower[ace] = NewCard(s, 11)
		re.nextHigher[ace] = ace
	}
}

// NextHigher returns the next higher card of c's suit still in the chain.
func (re *RankEquivalence) NextHigher(c Card) Card { return re.nextHigher[c] }

// NextLower returns the next lower card of c's suit still in the chain.
func (re *RankEquivalence) NextLower(c Card) Card { return re.nextLower[c] }

// Play removes c from the chain, relinking its neighbors past it. It does
// not modify c's own pointers, so a matching Unplay(c) can restore them.
func (re *RankEquivalence) Play(c Card) {
	nh := re.nextHigher[c]
	nl := re.nextLower[c]
	re.nextHigher[nl] = nh
	re.nextLower[nh] = nl
}

// Unplay reinserts c into the chain. Only valid when c was the single most
// recently played card (the chain supports one level of undo).
func (re *RankEquivalence) Unplay(c Card) {
	nh := re.nextHigher[c]
	nl := re.nextLower[c]
	if nl != c {
		re.nextHigher[nl] = c
	}
	if nh != c {
		re.nextLower[nh] = c
	}
}

// Clone returns an independent copy, used when the search needs a local
// snapshot to mutate (at the fourth card of a trick) while the caller's
// chain must be restored bit-exact on return.
func (re *RankEquivalence) Clone() *RankEquivalence {
	cp := *re
	return &cp
}
