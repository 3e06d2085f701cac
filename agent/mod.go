package agent

import (
	"connect4/engine"
	"connect4/game"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

var (
	_ engine.Agent = (*Random)(nil)
	_ engine.Agent = (*Simple)(nil)
	_ engine.Agent = (*Better)(nil)
	_ engine.Agent = (*MonteCarlo)(nil)
)

type Option func(o *options)

type options struct {
	seed    uint64
	perMove bool
}

// WithSeed fixes the seed of the agent's random choices.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithRolloutsPerMove makes MonteCarlo run all of its rollouts for every
// candidate and compare per-candidate win counts. Other agents ignore it.
func WithRolloutsPerMove() Option {
	return func(o *options) {
		o.perMove = true
	}
}

func newOptions(opts []Option) options {
	o := options{seed: uint64(time.Now().UnixNano())}
	for _, option := range opts {
		option(&o)
	}
	return o
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// legalMoves enforces the preconditions every agent shares.
func legalMoves(board *game.Board, player game.Player) []int {
	if !player.Valid() {
		panic(fmt.Sprintf("invalid player %v", player))
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves")
	}
	return moves
}

// wins reports whether player dropping into the legal column col wins.
func wins(board *game.Board, col int, player game.Player) bool {
	win, err := board.WouldWin(col, player)
	if err != nil {
		panic(err)
	}
	return win
}
