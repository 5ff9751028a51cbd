// Package bridge implements a double-dummy bridge analyzer: given a complete
// four-hand deal, a trump suit, and the cards played so far, it determines
// the exact number of tricks each side can take under best defense.
//
// The package is a pure, synchronous library. GameState follows strict
// apply/undo discipline so a single instance is reused across an entire
// recursive search; TrickState is copied by value and RankEquivalence is
// cloned where the search needs a snapshot to mutate.
package bridge
