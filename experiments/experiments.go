package experiments

import (
	"connect4/agent"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Tally counts the results of one agent config over an experiment.
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

func (t Tally) Games() int { return t.Wins + t.Losses + t.Draws }

// Experiments lists the named experiments the command line can run.
var Experiments = map[string]func(Config) (map[int]Tally, error){
	"baseline":   RunBaseline,
	"montecarlo": RunMonteCarlo,
}

// Names returns the experiment names in order.
func Names() []string {
	names := make([]string, 0, len(Experiments))
	for name := range Experiments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunBaseline pairs every agent kind against the random agent.
func RunBaseline(conf Config) (map[int]Tally, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.Random}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.Random},
		{ID: 2, Kind: metrics.Simple},
		{ID: 3, Kind: metrics.Better},
		{ID: 4, Kind: metrics.MonteCarlo, Rollouts: conf.Rollouts},
	}
	return runNamed("baseline", conf, baseline, configs)
}

// RunMonteCarlo pairs MonteCarlo agents of both tally modes against the
// opponent-checking agent.
func RunMonteCarlo(conf Config) (map[int]Tally, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.Better}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MonteCarlo, Rollouts: conf.Rollouts},
		{ID: 2, Kind: metrics.MonteCarlo, Rollouts: conf.Rollouts, PerMove: true},
	}
	return runNamed("montecarlo", conf, baseline, configs)
}

func runNamed(name string, conf Config, baseline metrics.AgentConfig, configs []metrics.AgentConfig) (map[int]Tally, error) {
	if !conf.IsValid() {
		return nil, fmt.Errorf("invalid experiment config %+v", conf)
	}

	all := append([]metrics.AgentConfig{baseline}, configs...)
	if conf.Seed != 0 {
		for i := range all {
			all[i].Seed = conf.Seed + uint64(all[i].ID)
		}
	}

	// Each matchup pairs the baseline agent against a config
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range all[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{all[0], config})
	}

	writer, err := metrics.NewWriter(conf.Root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	return Run(name, all, matchUps, conf.NumGames, writer)
}

// Run plays numGames games per match up, alternating which agent moves first,
// stores the records through writer (if any) and returns a tally per agent ID.
// The first config of a match up always plays PlayerA.
func Run(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int, writer *metrics.Writer) (map[int]Tally, error) {
	for _, config := range configs {
		if !config.IsValid() {
			return nil, fmt.Errorf("invalid agent config %+v", config)
		}
	}

	count := 0
	tallies := map[int]Tally{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		if len(matchup) != 2 {
			return nil, fmt.Errorf("matchup %d has %d agents, want 2", mi+1, len(matchup))
		}
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%v and agent2=%v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			count++
			starting := game.PlayerA
			if i%2 == 1 {
				starting = game.PlayerB
			}

			winner, gameMetric, moveMetrics := runGame(config1, config2, starting, count)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			record(tallies, config1.ID, config2.ID, winner)

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d: agent1=%+v agent2=%+v", mi+1, len(matchUps), tallies[config1.ID], tallies[config2.ID])
	}

	log.Info().Msgf("completed %s experiment", name)

	if writer == nil {
		return tallies, nil
	}

	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return tallies, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return tallies, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return tallies, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return tallies, nil
}

func record(tallies map[int]Tally, idA, idB int, winner game.Player) {
	a, b := tallies[idA], tallies[idB]
	switch winner {
	case game.PlayerA:
		a.Wins++
		b.Losses++
	case game.PlayerB:
		a.Losses++
		b.Wins++
	default:
		a.Draws++
		b.Draws++
	}
	tallies[idA] = a
	if idB != idA {
		tallies[idB] = b
	}
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig, starting game.Player, gameID int) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(
		createAgent(config1, gameID),
		createAgent(config2, gameID),
		engine.WithStartingPlayer(starting),
		engine.WithMetrics(),
	)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, gameID int) engine.Agent {
	options := []agent.Option{}
	baselineOptions := []agent.Option{}

	if config.Seed != 0 {
		seed := config.Seed*1_000_003 + uint64(gameID)
		options = append(options, agent.WithSeed(seed))
		baselineOptions = append(baselineOptions, agent.WithSeed(seed+1))
	}
	if config.PerMove {
		options = append(options, agent.WithRolloutsPerMove())
	}

	switch config.Kind {
	case metrics.Random:
		return agent.NewRandom(options...)
	case metrics.Simple:
		return agent.NewSimple(options...)
	case metrics.Better:
		return agent.NewBetter(options...)
	case metrics.MonteCarlo:
		return agent.NewMonteCarlo(config.Rollouts, agent.NewSimple(baselineOptions...), options...)
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}
