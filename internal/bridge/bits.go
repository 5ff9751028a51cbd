package bridge

import "math/bits"

// CardSet is a 52-bit set of cards, one bit per card index (card = rank*4+suit).
type CardSet uint64

// cardBit returns the one-hot mask for a single card.
func cardBit(c Card) CardSet { return CardSet(1) << uint(c) }

// Has reports whether the set contains c.
func (cs CardSet) Has(c Card) bool { return cs&cardBit(c) != 0 }

// Add returns the set with c added.
func (cs CardSet) Add(c Card) CardSet { return cs | cardBit(c) }

// Remove returns the set with c removed.
func (cs CardSet) Remove(c Card) CardSet { return cs &^ cardBit(c) }

// Count returns the number of cards in the set.
func (cs CardSet) Count() int { return bits.OnesCount64(uint64(cs)) }

// Empty reports whether the set has no cards.
func (cs CardSet) Empty() bool { return cs == 0 }

// lsb isolates the lowest set bit.
func lsb(cs CardSet) CardSet { return cs & -cs }

// bitIndex maps a one-hot CardSet to its card index. Implemented with
// math/bits.TrailingZeros64, which produces the same result on every
// platform (spec.md 4.1 allows either a compiler intrinsic or a
// precomputed perfect-hash table; TrailingZeros64 is the portable
// intrinsic and needs no platform-specific lookup table).
func bitIndex(cs CardSet) Card {
	return Card(bits.TrailingZeros64(uint64(cs)))
}

// suitMask holds, for each suit, the 13 cards belonging to it. suitMask[NoTrump] is 0.
var suitMask [5]CardSet

// sameRankOrHigher[c] is the set of cards of c's suit with rank >= rank(c).
var sameRankOrHigher [52]CardSet

func init() {
	for s := Clubs; s <= Spades; s++ {
		var mask CardSet
		for r := Rank(0); r <= 12; r++ {
			mask = mask.Add(NewCard(s, r))
		}
		suitMask[s] = mask
	}
	for s := Clubs; s <= Spades; s++ {
		for r := Rank(0); r <= 12; r++ {
			var mask CardSet
			for r2 := r; r2 <= 12; r2++ {
				mask = mask.Add(NewCard(s, r2))
			}
			sameRankOrHigher[NewCard(s, r)] = mask
		}
	}
}

// eachCard calls f for every card in cs in ascending card index order:
// by rank, then by suit within a rank (card = rank*4+suit), so each
// suit's cards are visited lowest rank first.
func eachCard(cs CardSet, f func(Card)) {
	for cs != 0 {
		bit := lsb(cs)
		cs ^= bit
		f(bitIndex(bit))
	}
}
