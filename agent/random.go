package agent

import (
	"connect4/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

func NewRandom(options ...Option) *Random {
	o := newOptions(options)
	return &Random{rng: newRand(o.seed)}
}

func (r *Random) ChooseMove(board *game.Board, player game.Player) int {
	moves := legalMoves(board, player)
	return r.pick(moves)
}

func (r *Random) pick(moves []int) int {
	return moves[r.rng.Intn(len(moves))]
}
