package bridge

// searchLeader is the search function for the first player to a trick. It
// returns whether pl's side can take at least tricktarget of the
// TricksLeft() tricks remaining, together with the set of cards the
// answer actually depended on.
func (p *Position) searchLeader(tricktarget int, pl Player, re *RankEquivalence) (bool, CardSet) {
	if tricktarget <= 0 {
		return true, 0
	}
	if tricktarget >= 1+p.state.TricksLeft() {
		return false, 0
	}
	if p.state.TricksLeft() == 1 {
		return p.searchLastTrick(pl)
	}

	if hit, mask := p.cache.Check(p.state, pl, tricktarget); hit != 0 {
		return hit > 0, mask
	}

	moves := GenerateLeaderMoves(p.state, pl, re)
	oppoTarget := 1 + p.state.TricksLeft() - tricktarget

	var failmask CardSet
	for _, m := range moves {
		p.state.Play(m.Card, pl)
		trick := NewTrick(pl, m.Card)
		won, thismask := p.searchSecond(oppoTarget, pl.Next(), re, trick)
		thisPlayWorks := !won
		p.state.Unplay()

		if thismask&m.Equivalents != 0 {
			thismask |= sameRankOrHigher[m.Card]
		}
		if thisPlayWorks {
			p.cache.UpdateHit(p.state, pl, thismask, tricktarget)
			return true, thismask
		}
		failmask |= thismask
	}

	p.cache.UpdateMiss(p.state, pl, failmask, tricktarget)
	return false, failmask
}

// searchLastTrick resolves the final trick directly by simulating all four
// plays (each seat has exactly one card left), without consulting the
// cache.
func (p *Position) searchLastTrick(pl Player) (bool, CardSet) {
	lead := bitIndex(p.state.Hand(pl))
	trick := NewTrick(pl, lead)
	cur := pl.Next()
	for i := 0; i < 3; i++ {
		c := bitIndex(p.state.Hand(cur))
		trick.Play(cur, c, p.state.Trumps)
		cur = cur.Next()
	}
	var mask CardSet
	if trick.RankTrick {
		mask = sameRankOrHigher[trick.WinningCard]
	}
	return pl.Partnership() == trick.Winner.Partnership(), mask
}

// searchSecond is the search function for the second player to a trick.
func (p *Position) searchSecond(tricktarget int, pl Player, re *RankEquivalence, trick TrickState) (bool, CardSet) {
	moves := GenerateSecondHandMoves(p.state, pl, trick, re)
	oppoTarget := 1 + p.state.TricksLeft() - tricktarget

	var failmask CardSet
	for _, m := range moves {
		p.state.Play(m.Card, pl)
		next := trick
		next.Play(pl, m.Card, p.state.Trumps)
		won, thismask := p.searchThird(oppoTarget, pl.Next(), re, next)
		thisPlayWorks := !won
		p.state.Unplay()

		if thismask&m.Equivalents != 0 {
			thismask |= sameRankOrHigher[m.Card]
		}
		if thisPlayWorks {
			return true, thismask
		}
		failmask |= thismask
	}
	return false, failmask
}

// searchThird is the search function for the third player to a trick.
func (p *Position) searchThird(tricktarget int, pl Player, re *RankEquivalence, trick TrickState) (bool, CardSet) {
	moves := GenerateThirdHandMoves(p.state, pl, trick, re)
	oppoTarget := 1 + p.state.TricksLeft() - tricktarget

	var failmask CardSet
	for _, m := range moves {
		p.state.Play(m.Card, pl)
		next := trick
		next.Play(pl, m.Card, p.state.Trumps)
		won, thismask := p.searchFourth(oppoTarget, pl.Next(), re, next)
		thisPlayWorks := !won
		p.state.Unplay()

		if thismask&m.Equivalents != 0 {
			thismask |= sameRankOrHigher[m.Card]
		}
		if thisPlayWorks {
			return true, thismask
		}
		failmask |= thismask
	}
	return false, failmask
}

// searchFourth is the search function for the fourth (last) player to a
// trick. It commits the rank-equivalence updates for the trick just
// completed before recursing into the next trick's leader search.
func (p *Position) searchFourth(tricktarget int, pl Player, re *RankEquivalence, trick TrickState) (bool, CardSet) {
	moves := GenerateFourthHandMoves(p.state, pl, trick, re)
	oppoTarget := 1 + p.state.TricksLeft() - tricktarget

	nextRE := re.Clone()
	for _, c := range p.state.TrickCardsSoFar() {
		nextRE.Play(c)
	}

	var failmask CardSet
	for _, m := range moves {
		p.state.Play(m.Card, pl)
		nextRE.Play(m.Card)
		completed := trick
		completed.Play(pl, m.Card, p.state.Trumps)

		var won bool
		var thismask CardSet
		if pl.Partnership() == completed.Winner.Partnership() {
			won, thismask = p.searchLeader(tricktarget-1, completed.Winner, nextRE)
		} else {
			w, m2 := p.searchLeader(oppoTarget-1, completed.Winner, nextRE)
			won, thismask = !w, m2
		}
		thisPlayWorks := won

		if completed.RankTrick {
			thismask |= sameRankOrHigher[completed.WinningCard]
		}
		if thismask&m.Equivalents != 0 {
			thismask |= sameRankOrHigher[m.Card]
		}
		p.state.Unplay()
		nextRE.Unplay(m.Card)

		if thisPlayWorks {
			return true, thismask
		}
		failmask |= thismask
	}
	return false, failmask
}
