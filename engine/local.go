package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithBoard starts the game from a copy of board instead of an empty one.
func WithBoard(board *game.Board) Option {
	return func(e *Engine) {
		if board != nil {
			e.Board = board.Clone()
		}
	}
}

func WithStartingPlayer(player game.Player) Option {
	return func(e *Engine) {
		if player.Valid() {
			e.starting = player
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// Engine plays a single recorded game between two agents.
type Engine struct {
	Board    *game.Board
	Agents   [2]Agent // indexed by player: PlayerA first
	starting game.Player
	metrics  metrics.Collector
}

func LocalEngine(agentA, agentB Agent, options ...Option) *Engine {
	if agentA == nil || agentB == nil {
		panic("need two agents")
	}

	e := &Engine{ // Default values
		Board:    game.NewBoard(),
		Agents:   [2]Agent{agentA, agentB},
		starting: game.PlayerA,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a win or a full board.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	log.Debug().Msgf("player %v is starting", e.starting)

	winner := play(e.Board, e.Agents, e.starting, e.metrics)
	gameMetric, moveMetrics := e.metrics.Complete(winner)

	if winner == Draw {
		log.Debug().Msgf("game ended in a draw\n%s", e.Board)
	} else {
		log.Debug().Msgf("player %v won\n%s", winner, e.Board)
	}
	return winner, gameMetric, moveMetrics
}
