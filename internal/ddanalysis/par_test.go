package ddanalysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bridgedd/internal/bridge"
)

// dominanceDeal is a two-trick deal where North/South hold the top two
// spades and the only clubs, and East/West hold the two lower spades and
// the only diamonds. With North on lead (declarer West, as built here)
// NS take both tricks at no-trump. The makeable-tricks matrix does depend
// on declarer and strain: with East/West on lead a diamond takes a trick
// unless NS can ruff it (clubs or spades trumps), and with diamonds trumps
// East/West take one trick whoever leads.
func dominanceDeal() bridge.Deal {
	d := bridge.NewDeal(1, bridge.West, bridge.NoTrump)
	d.Holder[bridge.NewCard(bridge.Spades, 12)] = bridge.North
	d.Holder[bridge.NewCard(bridge.Clubs, 0)] = bridge.North
	d.Holder[bridge.NewCard(bridge.Spades, 0)] = bridge.East
	d.Holder[bridge.NewCard(bridge.Diamonds, 0)] = bridge.East
	d.Holder[bridge.NewCard(bridge.Spades, 11)] = bridge.South
	d.Holder[bridge.NewCard(bridge.Clubs, 1)] = bridge.South
	d.Holder[bridge.NewCard(bridge.Spades, 1)] = bridge.West
	d.Holder[bridge.NewCard(bridge.Diamonds, 1)] = bridge.West
	return d
}

func TestMakeableTricksNorthSouthDeclaring(t *testing.T) {
	t.Parallel()
	// East/West lead: a diamond lead wins a trick unless NS can ruff it.
	want := [5]int{bridge.Clubs: 2, bridge.Diamonds: 1, bridge.Hearts: 1, bridge.Spades: 2, bridge.NoTrump: 1}
	table := MakeableTricks(dominanceDeal())
	for _, declarer := range []bridge.Player{bridge.North, bridge.South} {
		for trumps := bridge.Clubs; trumps <= bridge.NoTrump; trumps++ {
			assert.Equal(t, want[trumps], table.Tricks[declarer][trumps], "declarer=%v trumps=%v", declarer, trumps)
		}
	}
}

func TestMakeableTricksEastWestDeclaring(t *testing.T) {
	t.Parallel()
	// North/South lead: East/West only score when diamonds are trumps.
	want := [5]int{bridge.Clubs: 0, bridge.Diamonds: 1, bridge.Hearts: 0, bridge.Spades: 0, bridge.NoTrump: 0}
	table := MakeableTricks(dominanceDeal())
	for _, declarer := range []bridge.Player{bridge.East, bridge.West} {
		for trumps := bridge.Clubs; trumps <= bridge.NoTrump; trumps++ {
			assert.Equal(t, want[trumps], table.Tricks[declarer][trumps], "declarer=%v trumps=%v", declarer, trumps)
		}
	}
}

func TestMakeableTricksParallelAgreesWithSequential(t *testing.T) {
	t.Parallel()
	deal := dominanceDeal()
	seq := MakeableTricks(deal)
	par, err := MakeableTricksParallel(context.Background(), deal)
	require.NoError(t, err)
	assert.Equal(t, seq, par, "parallel result must agree with sequential result")
}

// ruffSensitiveDeal is a two-trick deal whose trick count genuinely depends
// on the trump strain in a way that swings every trick: North holds nothing
// but the top two spades and must lead them; West follows suit with lower
// spades every time, so North/South win both tricks under any strain East
// can't ruff with. But East, void in spades, holds two small hearts — when
// hearts are trumps, East ruffs North's spade lead and East/West take both
// tricks instead. When diamonds are trumps South could ruff too, but
// North's spades already win, so East/West still take nothing.
// A cache entry computed for one strain's opening position must never
// leak into another strain's query against the same leader and the same
// suit-length signature.
func ruffSensitiveDeal() bridge.Deal {
	d := bridge.NewDeal(2, bridge.West, bridge.Clubs)
	d.Holder[bridge.NewCard(bridge.Spades, 12)] = bridge.North
	d.Holder[bridge.NewCard(bridge.Spades, 11)] = bridge.North
	d.Holder[bridge.NewCard(bridge.Spades, 0)] = bridge.West
	d.Holder[bridge.NewCard(bridge.Spades, 1)] = bridge.West
	d.Holder[bridge.NewCard(bridge.Hearts, 0)] = bridge.East
	d.Holder[bridge.NewCard(bridge.Hearts, 1)] = bridge.East
	d.Holder[bridge.NewCard(bridge.Diamonds, 0)] = bridge.South
	d.Holder[bridge.NewCard(bridge.Diamonds, 1)] = bridge.South
	return d
}

func TestMakeableTricksRuffSensitiveDealVariesByStrain(t *testing.T) {
	t.Parallel()
	// Declarer West puts North on lead (West.Next() == North), so this
	// queries how many tricks East/West (the non-leading side here) can
	// take: 0 when East can't ruff, 2 when hearts let East ruff North's
	// spade lead and then cash the other heart.
	table := MakeableTricks(ruffSensitiveDeal())
	assert.Equal(t, 0, table.Tricks[bridge.West][bridge.Clubs], "no ruffing power: EW take nothing")
	assert.Equal(t, 0, table.Tricks[bridge.West][bridge.Diamonds], "no ruffing power: EW take nothing")
	assert.Equal(t, 0, table.Tricks[bridge.West][bridge.Spades], "no ruffing power: EW take nothing")
	assert.Equal(t, 0, table.Tricks[bridge.West][bridge.NoTrump], "no ruffing power: EW take nothing")
	assert.Equal(t, 2, table.Tricks[bridge.West][bridge.Hearts], "East ruffs the spade lead and cashes the last heart")
}

func TestMakeableTricksParallelAgreesWithSequentialRuffSensitive(t *testing.T) {
	t.Parallel()
	deal := ruffSensitiveDeal()
	seq := MakeableTricks(deal)
	par, err := MakeableTricksParallel(context.Background(), deal)
	require.NoError(t, err)
	assert.Equal(t, seq, par, "parallel result must agree with sequential result across every trump strain")
}

func TestMakeableTricksParallelRespectsCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := MakeableTricksParallel(ctx, dominanceDeal()); err == nil {
		t.Error("expected an error from an already-cancelled context")
	}
}
