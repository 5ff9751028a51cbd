package bridge

import "testing"

func TestNewTrick(t *testing.T) {
	t.Parallel()
	lead := NewCard(Hearts, 5)
	trick := NewTrick(North, lead)
	if trick.Leader != North || trick.Winner != North {
		t.Fatalf("leader/winner should both start as the leader")
	}
	if trick.LedSuit != Hearts || trick.WinningSuit != Hearts {
		t.Fatalf("led/winning suit should start as the lead card's suit")
	}
	if trick.RankTrick {
		t.Fatal("RankTrick should start false")
	}
}

func TestTrickPlayFollowSuit(t *testing.T) {
	t.Parallel()
	trick := NewTrick(North, NewCard(Hearts, 5))
	trick.Play(East, NewCard(Hearts, 10), NoTrump)
	if trick.Winner != East {
		t.Fatalf("higher card of the led suit should take the lead, got winner %v", trick.Winner)
	}
	trick.Play(South, NewCard(Hearts, 2), NoTrump)
	if trick.Winner != East {
		t.Fatalf("lower follow should not change the winner, got %v", trick.Winner)
	}
}

func TestTrickPlayRuff(t *testing.T) {
	t.Parallel()
	trick := NewTrick(North, NewCard(Clubs, 10))
	trick.Play(East, NewCard(Hearts, 0), Hearts)
	if trick.Winner != East {
		t.Fatalf("a trump should always beat a non-trump follow, got winner %v", trick.Winner)
	}
	if trick.RankTrick {
		t.Fatal("a ruffed trick is not a rank trick")
	}
	if trick.WinningSuit != Hearts {
		t.Fatalf("WinningSuit should switch to trumps, got %v", trick.WinningSuit)
	}
}

func TestTrickPlayOverruff(t *testing.T) {
	t.Parallel()
	trick := NewTrick(North, NewCard(Clubs, 10))
	trick.Play(East, NewCard(Hearts, 0), Hearts)
	trick.Play(South, NewCard(Hearts, 5), Hearts)
	if trick.Winner != South {
		t.Fatalf("a higher trump should overruff, got winner %v", trick.Winner)
	}
}

func TestTrickPlayDiscard(t *testing.T) {
	t.Parallel()
	trick := NewTrick(North, NewCard(Clubs, 10))
	trick.Play(East, NewCard(Diamonds, 12), Hearts)
	if trick.Winner != North {
		t.Fatalf("a plain discard (not led suit, not trump) should never win, got %v", trick.Winner)
	}
}

func TestTrickWouldWinPartnerAlreadyWinning(t *testing.T) {
	t.Parallel()
	trick := NewTrick(North, NewCard(Clubs, 10))
	if !trick.WouldWin(South, NewCard(Diamonds, 0), NoTrump) {
		t.Fatal("any card should 'win' for the partner of the current winner")
	}
}

func TestTrickWouldWinBeatCurrentWinner(t *testing.T) {
	t.Parallel()
	trick := NewTrick(North, NewCard(Clubs, 5))
	if !trick.WouldWin(East, NewCard(Clubs, 10), NoTrump) {
		t.Fatal("a higher card of the led suit should win")
	}
	if trick.WouldWin(East, NewCard(Clubs, 2), NoTrump) {
		t.Fatal("a lower card of the led suit should not win")
	}
	if !trick.WouldWin(East, NewCard(Hearts, 0), Hearts) {
		t.Fatal("any trump should win over a non-trump lead")
	}
	if trick.WouldWin(East, NewCard(Diamonds, 12), NoTrump) {
		t.Fatal("an off-suit non-trump discard should never win")
	}
}
