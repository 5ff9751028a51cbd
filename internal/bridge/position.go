package bridge

import "fmt"

// Position is a single double-dummy problem in progress: a deal, the play
// so far, and the cache the search consults and updates. It mirrors the
// analyzer class in behavior — construct one per problem; don't reuse a
// Position across unrelated analyses, since its cache is tied to the
// signatures it has already explored.
type Position struct {
	deal    Deal
	trumps  Suit
	state   *GameState
	cache   *Cache
	re      *RankEquivalence
	player  Player
	trick   TrickState
	hasTrick bool
}

// NewPosition builds a Position from a deal and the cards already played,
// replaying the play record so trick leadership, the running rank
// equivalence, and the player on turn all reflect the current position.
func NewPosition(deal Deal, played []Card, cache *Cache) (*Position, error) {
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	p := &Position{
		deal:   deal,
		trumps: deal.Trumps,
		state:  NewGameState(deal),
		cache:  cache,
		re:     NewRankEquivalence(),
		player: deal.Declarer.Next(),
	}
	for i, c := range played {
		pl := deal.Holder[c]
		if pl == NoPlayer {
			return nil, fmt.Errorf("%w: played card %s was never dealt", ErrIllegalPlay, c)
		}
		if pl != p.player {
			return nil, fmt.Errorf("%w: %s is held by %s but it is %s's turn", ErrIllegalPlay, c, pl, p.player)
		}
		if !p.state.Hand(pl).Has(c) {
			return nil, fmt.Errorf("%w: %s has already been played", ErrIllegalPlay, c)
		}
		if i%4 != 0 && c.Suit() != p.trick.LedSuit && p.state.Hand(pl)&suitMask[p.trick.LedSuit] != 0 {
			return nil, fmt.Errorf("%w: %s must follow suit led (%s)", ErrIllegalPlay, pl, p.trick.LedSuit)
		}
		if i%4 == 0 {
			p.trick = NewTrick(p.player, c)
			p.hasTrick = true
		} else {
			p.trick.Play(p.player, c, p.trumps)
		}
		p.state.Play(c, pl)
		if i%4 == 3 {
			for _, pc := range p.state.LastPlays() {
				p.re.Play(pc)
			}
			p.player = p.trick.Winner
			p.hasTrick = false
		} else {
			p.player = p.player.Next()
		}
	}
	return p, nil
}

// Player returns the seat on turn.
func (p *Position) Player() Player { return p.player }

// TricksLeft returns the number of tricks remaining to be played.
func (p *Position) TricksLeft() int { return p.state.TricksLeft() }

// GenerateMoves returns the legal candidate moves for the player on turn,
// in the search's heuristic order.
func (p *Position) GenerateMoves() []Move {
	switch p.state.NPlayed() % 4 {
	case 0:
		return GenerateLeaderMoves(p.state, p.player, p.re)
	case 1:
		return GenerateSecondHandMoves(p.state, p.player, p.trick, p.re)
	case 2:
		return GenerateThirdHandMoves(p.state, p.player, p.trick, p.re)
	default:
		return GenerateFourthHandMoves(p.state, p.player, p.trick, p.re)
	}
}

// Make reports whether partnership who can take at least tricktarget of
// the tricks remaining in the position.
func (p *Position) Make(who Partnership, tricktarget int) bool {
	if tricktarget <= 0 {
		return true
	}
	onLead := p.player.Partnership() == who
	target := tricktarget
	if !onLead {
		target = 1 + p.state.TricksLeft() - tricktarget
	}

	var won bool
	switch p.state.NPlayed() % 4 {
	case 0:
		won, _ = p.searchLeader(target, p.player, p.re)
	case 1:
		won, _ = p.searchSecond(target, p.player, p.re, p.trick)
	case 2:
		won, _ = p.searchThird(target, p.player, p.re, p.trick)
	default:
		won, _ = p.searchFourth(target, p.player, p.re, p.trick)
	}
	if onLead {
		return won
	}
	return !won
}

// Bound is an exclusive upper / inclusive lower bound on makeable tricks:
// high > actual >= low. A resolved value has high == low+1.
type Bound struct {
	Low, High int
}

// Resolved reports whether the bound pins down an exact trick count.
func (b Bound) Resolved() bool { return b.Low+1 >= b.High }

// Analysis is the result of analyzing a position: the overall bound on
// tricks the side on turn can take, and a bound per candidate move (each
// refined to an exact value only when requested).
type Analysis struct {
	Global Bound
	Moves  map[Card]Bound
}

// Progress is called after each probe during Analyze; returning false
// cancels the analysis, which then returns whatever has been resolved so
// far.
type Progress func(*Analysis) bool

func updateHit(a *Analysis, move Move, goal int) {
	set(a, move, func(b *Bound) { b.Low = goal })
	if a.Global.Low < goal {
		a.Global.Low = goal
	}
}

func updateMiss(a *Analysis, move Move, goal int) {
	set(a, move, func(b *Bound) { b.High = goal })
}

func set(a *Analysis, move Move, f func(*Bound)) {
	b := a.Moves[move.Card]
	f(&b)
	a.Moves[move.Card] = b
	eachCard(move.Equivalents, func(c Card) {
		eb := a.Moves[c]
		f(&eb)
		a.Moves[c] = eb
	})
}

// Analyze determines, for the partnership on turn, how many of the
// remaining tricks it can take. Phase one bisects the global bound across
// all candidate moves to find the best one; phase two (only if
// analyzeMoves is set) refines every move's own bound to the same
// precision. progress may be nil; when non-nil, returning false from it
// cancels the analysis early.
func (p *Position) Analyze(analyzeMoves bool, progress Progress) *Analysis {
	moves := p.GenerateMoves()
	who := p.player.Partnership()
	tricksLeft := p.state.TricksLeft()

	a := &Analysis{
		Global: Bound{Low: 0, High: tricksLeft + 1},
		Moves:  make(map[Card]Bound, len(moves)),
	}
	for _, m := range moves {
		wonAlready := 0
		if p.hasTrick && p.state.NPlayed()%4 == 3 && p.trick.WouldWin(p.player, m.Card, p.trumps) {
			wonAlready = 1
		}
		updateHit(a, m, wonAlready)
		updateMiss(a, m, a.Global.High)
	}

	for a.Global.Low+1 < a.Global.High {
		goal := (a.Global.Low + a.Global.High) / 2
		found := false
		for _, m := range moves {
			if goal >= a.Moves[m.Card].High {
				continue
			}
			if p.MakeMove(who, goal, m.Card) {
				updateHit(a, m, goal)
				found = true
			} else {
				updateMiss(a, m, goal)
			}
			if progress != nil && !progress(a) {
				return a
			}
			if found {
				break
			}
		}
		if !found {
			a.Global.High = goal
		}
		if progress != nil && !progress(a) {
			return a
		}
	}
	if !analyzeMoves {
		return a
	}

	for _, m := range moves {
		for {
			b := a.Moves[m.Card]
			if b.Low+1 >= b.High {
				break
			}
			goal := (b.Low + b.High) / 2
			if p.MakeMove(who, goal, m.Card) {
				updateHit(a, m, goal)
			} else {
				updateMiss(a, m, goal)
			}
			if progress != nil && !progress(a) {
				return a
			}
		}
	}
	return a
}

// MakeMove reports whether partnership who can take at least tricktarget
// tricks after playing move from the current position (tricktarget counts
// the trick just completed by move, if move completes one). It leaves the
// Position unchanged.
func (p *Position) MakeMove(who Partnership, tricktarget int, move Card) bool {
	savedTrick, savedHasTrick := p.trick, p.hasTrick
	savedPlayer := p.player
	savedRE := p.re.Clone()

	pl := p.player
	p.state.Play(move, pl)
	if p.state.NPlayed()%4 == 1 {
		p.trick = NewTrick(pl, move)
		p.hasTrick = true
		p.player = pl.Next()
	} else {
		p.trick.Play(pl, move, p.trumps)
		p.player = pl.Next()
		if p.state.NPlayed()%4 == 0 {
			for _, c := range p.state.LastPlays() {
				p.re.Play(c)
			}
			if p.trick.Winner.Partnership() == who {
				tricktarget--
			}
			p.player = p.trick.Winner
			p.hasTrick = false
		}
	}

	rv := p.Make(who, tricktarget)

	p.trick, p.hasTrick = savedTrick, savedHasTrick
	p.re = savedRE
	p.state.Unplay()
	p.player = savedPlayer
	return rv
}
