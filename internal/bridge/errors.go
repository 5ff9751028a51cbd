package bridge

import "errors"

// Error categories the analyzer distinguishes, per the error handling
// design: illegal input is rejected at construction time; invariant
// violations during search are programmer errors and panic rather than
// return an error, since the alpha-beta machinery is total over legal
// game states and should never observe one.

// ErrIllegalDeal indicates a deal fails its structural invariants: a card
// held by two players, or players holding different counts.
var ErrIllegalDeal = errors.New("bridge: illegal deal")

// ErrIllegalPlay indicates a play does not follow suit when the player
// could have, or plays a card the player does not hold.
var ErrIllegalPlay = errors.New("bridge: illegal play")

// ErrMalformedInput indicates a serialized deal or play string does not
// match the expected grammar.
var ErrMalformedInput = errors.New("bridge: malformed input")
