package experiments

import "connect4/meta"

// Config configures a named experiment.
type Config struct {
	Root     string // directory receiving the CSV files
	NumGames int    // games per match up
	Rollouts int    // rollouts of MonteCarlo agents
	Seed     uint64 // 0 seeds every agent from the clock
}

func DefaultConfig() Config {
	return Config{
		Root:     meta.RESULTS_DIR,
		NumGames: meta.NUM_GAMES,
		Rollouts: meta.ROLLOUTS,
	}
}

func (conf Config) IsValid() bool {
	return conf.Root != "" &&
		conf.NumGames > 0 &&
		conf.Rollouts > 0
}
