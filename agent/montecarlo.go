package agent

import (
	"connect4/engine"
	"connect4/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

type rolloutFn func(board *game.Board, agentA, agentB engine.Agent, start game.Player) game.Player

// MonteCarlo plays a winning move when there is one. Otherwise it plays every
// candidate on a scratch board, rolls the game out with the baseline agent on
// both sides and keeps the candidate that pushed its running win count to a new
// high.
//
// By default one rollout is played per candidate and the win count runs across
// candidates, so the last candidate whose rollout was won is chosen. With
// WithRolloutsPerMove, n rollouts are played per candidate and the candidate
// with the most wins is chosen, the earliest one on ties. When no rollout is
// won the first legal move is played.
type MonteCarlo struct {
	n        int
	baseline engine.Agent
	perMove  bool
	rollout  rolloutFn
}

func NewMonteCarlo(n int, baseline engine.Agent, options ...Option) *MonteCarlo {
	if n <= 0 {
		panic(fmt.Sprintf("rollouts must be positive, got %d", n))
	}
	if baseline == nil {
		panic("need a baseline agent for rollouts")
	}
	o := newOptions(options)
	return &MonteCarlo{
		n:        n,
		baseline: baseline,
		perMove:  o.perMove,
		rollout:  engine.Simulate,
	}
}

func (m *MonteCarlo) Rollouts() int { return m.n }

func (m *MonteCarlo) ChooseMove(board *game.Board, player game.Player) int {
	moves := legalMoves(board, player)
	for _, col := range moves {
		if wins(board, col, player) {
			return col
		}
	}

	if m.perMove {
		return m.mostWins(board, player, moves)
	}
	return m.runningWins(board, player, moves)
}

func (m *MonteCarlo) runningWins(board *game.Board, player game.Player, moves []int) int {
	best, bestCol := 0, moves[0]
	won := 0
	for _, col := range moves {
		if m.simulate(board, col, player) == player {
			won++
		}
		if won > best {
			best, bestCol = won, col
		}
	}
	log.Debug().Msgf("montecarlo: player %v picks column %d with %d running wins over %d candidates", player, bestCol, best, len(moves))
	return bestCol
}

func (m *MonteCarlo) mostWins(board *game.Board, player game.Player, moves []int) int {
	best, bestCol := 0, moves[0]
	for _, col := range moves {
		won := 0
		for i := 0; i < m.n; i++ {
			if m.simulate(board, col, player) == player {
				won++
			}
		}
		if won > best {
			best, bestCol = won, col
		}
	}
	log.Debug().Msgf("montecarlo: player %v picks column %d winning %d of %d rollouts", player, bestCol, best, m.n)
	return bestCol
}

// simulate plays col for player on a scratch board and rolls the game out with
// the opponent to move.
func (m *MonteCarlo) simulate(board *game.Board, col int, player game.Player) game.Player {
	scratch := board.Clone()
	if err := scratch.Apply(col, player); err != nil {
		panic(err)
	}
	return m.rollout(scratch, m.baseline, m.baseline, player.Opponent())
}
