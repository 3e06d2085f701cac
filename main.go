package main

import (
	"connect4/experiments"
	"flag"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defaults := experiments.DefaultConfig()

	name := flag.String("experiment", "baseline", "Experiment to run: "+strings.Join(experiments.Names(), ", "))
	numGames := flag.Int("games", defaults.NumGames, "Number of games per match up")
	rollouts := flag.Int("rollouts", defaults.Rollouts, "Rollouts of MonteCarlo agents")
	seed := flag.Uint64("seed", 0, "Seed for every agent (0 seeds from the clock)")
	out := flag.String("out", defaults.Root, "Directory for experiment results")
	debug := flag.Bool("debug", false, "Log every game and move choice")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	run, ok := experiments.Experiments[*name]
	if !ok {
		log.Fatal().Msgf("unknown experiment %q, want one of %s", *name, strings.Join(experiments.Names(), ", "))
	}

	conf := experiments.Config{
		Root:     *out,
		NumGames: *numGames,
		Rollouts: *rollouts,
		Seed:     *seed,
	}
	tallies, err := run(conf)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *name)
	}

	ids := make([]int, 0, len(tallies))
	for id := range tallies {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		t := tallies[id]
		log.Info().Msgf("agent %d: %d wins, %d losses, %d draws", id, t.Wins, t.Losses, t.Draws)
	}
}
