// meta/meta.go
package meta

// NUM_GAMES defines the number of games per match up.
const NUM_GAMES = 30

// ROLLOUTS defines the number of rollouts for the MonteCarlo agent.
const ROLLOUTS = 50

// RESULTS_DIR defines where experiment results are written.
const RESULTS_DIR = "results"
