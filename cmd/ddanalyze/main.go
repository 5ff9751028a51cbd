package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lox/bridgedd/internal/bridge"
	"github.com/lox/bridgedd/internal/ddanalysis"
	"github.com/lox/bridgedd/internal/randutil"
)

// parseOrRandomDeal parses s as a deal string, unless it is the literal
// "random", in which case it generates one from seed.
func parseOrRandomDeal(s string, seed int64) (bridge.Deal, error) {
	if s == "random" {
		return bridge.RandomDeal(0, randutil.New(seed)), nil
	}
	return bridge.DeserializeDeal(0, s)
}

var cli struct {
	Debug bool `help:"enable debug logging"`

	Analyze AnalyzeCmd `cmd:"" help:"analyze a single position, reporting the makeable-tricks bound per candidate play of the player on turn"`
	Par     ParCmd     `cmd:"" help:"compute the full 4x5 makeable-tricks matrix for every declarer/strain combination"`
}

type AnalyzeCmd struct {
	Deal     string `help:"deal string: four hands (spades-to-clubs, period separated) space-separated, then trump+declarer (e.g. CDHSN+NESW), or 'random'" default:"random"`
	Play     string `help:"cards already played, as a flat suit+rank string"`
	AllLeads bool   `help:"refine every candidate lead's own bound, not just the best one"`
	Seed     int64  `help:"seed used when deal is 'random'" default:"0"`
}

type ParCmd struct {
	Deal     string `help:"deal string, same grammar as analyze, or 'random'" default:"random"`
	Parallel bool   `help:"compute the matrix concurrently on a pool of worker goroutines"`
	Seed     int64  `help:"seed used when deal is 'random'" default:"0"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ddanalyze"),
		kong.Description("Double-dummy bridge analyzer"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)
	printBanner()

	var err error
	switch ctx.Command() {
	case "analyze":
		err = cli.Analyze.Run()
	case "par":
		err = cli.Par.Run()
	default:
		log.Fatal().Msgf("unknown command: %s", ctx.Command())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

func (cmd *AnalyzeCmd) Run() error {
	deal, err := parseOrRandomDeal(cmd.Deal, cmd.Seed)
	if err != nil {
		return fmt.Errorf("parse deal: %w", err)
	}
	var played []bridge.Card
	if cmd.Play != "" {
		played, err = bridge.DeserializePlay(cmd.Play)
		if err != nil {
			return fmt.Errorf("parse play: %w", err)
		}
	}

	start := time.Now()
	pos, err := bridge.NewPosition(deal, played, bridge.NewCache())
	if err != nil {
		return err
	}

	progress := func(a *bridge.Analysis) bool {
		log.Debug().Int("low", a.Global.Low).Int("high", a.Global.High).Msg("probe")
		return true
	}

	result := pos.Analyze(cmd.AllLeads, progress)
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("global_low", result.Global.Low).
		Int("global_high", result.Global.High).
		Msg("analysis complete")

	for c, b := range result.Moves {
		fmt.Printf("%-3s low=%-2d high=%-2d resolved=%v\n", c, b.Low, b.High, b.Resolved())
	}
	return nil
}

func (cmd *ParCmd) Run() error {
	deal, err := parseOrRandomDeal(cmd.Deal, cmd.Seed)
	if err != nil {
		return fmt.Errorf("parse deal: %w", err)
	}

	start := time.Now()
	var table ddanalysis.MakeableTricksTable
	if cmd.Parallel {
		table, err = ddanalysis.MakeableTricksParallel(context.Background(), deal)
		if err != nil {
			return err
		}
	} else {
		table = ddanalysis.MakeableTricks(deal)
	}
	log.Info().Dur("elapsed", time.Since(start)).Bool("parallel", cmd.Parallel).Msg("par matrix complete")

	var b strings.Builder
	b.WriteString("       ")
	for trumps := bridge.Clubs; trumps <= bridge.NoTrump; trumps++ {
		b.WriteString(trumps.String() + "   ")
	}
	fmt.Println(strings.TrimRight(b.String(), " "))
	for declarer := bridge.North; declarer <= bridge.West; declarer++ {
		fmt.Printf("%s:     ", declarer)
		for trumps := bridge.Clubs; trumps <= bridge.NoTrump; trumps++ {
			fmt.Printf("%-4s", strconv.Itoa(table.Tricks[declarer][trumps]))
		}
		fmt.Println()
	}
	return nil
}

func printBanner() {
	fmt.Fprintln(os.Stderr, bannerStyle.Render(" ddanalyze "))
}
