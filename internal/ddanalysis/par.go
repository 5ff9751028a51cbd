// Package ddanalysis builds higher-level analyses on top of the pure
// internal/bridge search: the full makeable-tricks matrix, opening-lead
// queries, and stateful interactive sessions.
package ddanalysis

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/bridgedd/internal/bridge"
)

// MakeableTricksTable is the 4x5 matrix of tricks the declaring
// partnership can take for every (declarer seat, trump strain)
// combination, dealer_analysis_t's tricks[4][5] in the reference par
// engine.
type MakeableTricksTable struct {
	Tricks [4][5]int // [declarer][trumps], trumps indexed Clubs..NoTrump
}

// MakeableTricks computes the full table sequentially, one Position and
// one fresh Cache per query — the cache key does not include trumps, so a
// cache built under one trump strain is not valid for another.
func MakeableTricks(deal bridge.Deal) MakeableTricksTable {
	var table MakeableTricksTable
	for declarer := bridge.North; declarer <= bridge.West; declarer++ {
		for trumps := bridge.Clubs; trumps <= bridge.NoTrump; trumps++ {
			table.Tricks[declarer][trumps] = queryOne(deal, declarer, trumps, bridge.NewCache())
		}
	}
	return table
}

// MakeableTricksParallel computes the same table with a pool of up to
// runtime.NumCPU() worker goroutines (never more than the 20 queries)
// pulling (declarer, trumps) queries from a shared queue. Every query gets
// its own fresh Cache: the
// cache key is (tricksPlayed, leader, suitLengthSignature) and does not
// include trumps, so reusing one cache across queries under different
// trump strains would return bounds computed for the wrong strain. A
// worker pulling jobs across strains must not carry a cache between them,
// mirroring the per-worker-RNG isolation in the equity estimator this is
// grounded on.
func MakeableTricksParallel(ctx context.Context, deal bridge.Deal) (MakeableTricksTable, error) {
	type query struct {
		declarer bridge.Player
		trumps   bridge.Suit
	}
	queries := make([]query, 0, 20)
	for declarer := bridge.North; declarer <= bridge.West; declarer++ {
		for trumps := bridge.Clubs; trumps <= bridge.NoTrump; trumps++ {
			queries = append(queries, query{declarer, trumps})
		}
	}

	workers := runtime.NumCPU()
	if workers > len(queries) {
		workers = len(queries)
	}
	if workers < 1 {
		workers = 1
	}

	var table MakeableTricksTable
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int, len(queries))
	for i := range queries {
		jobs <- i
	}
	close(jobs)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				q := queries[i]
				table.Tricks[q.declarer][q.trumps] = queryOne(deal, q.declarer, q.trumps, bridge.NewCache())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MakeableTricksTable{}, err
	}
	return table, nil
}

// queryOne finds the exact number of tricks the declaring side can take
// for one (declarer, trumps) combination, via bisection over Position.Make.
func queryOne(deal bridge.Deal, declarer bridge.Player, trumps bridge.Suit, cache *bridge.Cache) int {
	d := deal
	d.Declarer = declarer
	d.Trumps = trumps
	pos, err := bridge.NewPosition(d, nil, cache)
	if err != nil {
		return 0
	}

	who := declarer.Partnership()
	tricksLeft := pos.TricksLeft()
	low, high := 0, tricksLeft+1
	for low+1 < high {
		goal := (low + high) / 2
		if pos.Make(who, goal) {
			low = goal
		} else {
			high = goal
		}
	}
	return low
}
