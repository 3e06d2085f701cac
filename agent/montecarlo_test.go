package agent

import (
	"connect4/engine"
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRollouts returns outcomes in order and records what each rollout saw.
type scriptedRollouts struct {
	outcomes []game.Player
	starts   []game.Player
	pieces   []int
}

func (s *scriptedRollouts) run(board *game.Board, agentA, agentB engine.Agent, start game.Player) game.Player {
	i := len(s.starts)
	s.starts = append(s.starts, start)
	count := 0
	for _, cell := range board.Cells() {
		if cell != game.None {
			count++
		}
	}
	s.pieces = append(s.pieces, count)
	return s.outcomes[i]
}

func TestMonteCarlo(t *testing.T) {
	A, B := game.PlayerA, game.PlayerB

	t.Run("playing an immediate win without rollouts", func(t *testing.T) {
		m := NewMonteCarlo(10, NewRandom(WithSeed(1)))
		m.rollout = func(*game.Board, engine.Agent, engine.Agent, game.Player) game.Player {
			t.Fatal("rollouts should not run when a move wins")
			return engine.Draw
		}

		got := m.ChooseMove(parse(t, twoWins...), A)

		require.Equal(t, 3, got, "First winning move should be played")
	})

	t.Run("keeping the candidate that sets a new running high", func(t *testing.T) {
		script := &scriptedRollouts{outcomes: []game.Player{B, A, B, engine.Draw, A, B, B}}
		m := NewMonteCarlo(10, NewRandom(WithSeed(1)))
		m.rollout = script.run
		board := game.NewBoard()

		got := m.ChooseMove(board, A)

		require.Equal(t, 4, got, "Second win lifts the running count to 2 at column 4")
		require.Len(t, script.starts, 7, "One rollout per candidate regardless of n")
		for i := range script.starts {
			require.Equal(t, B, script.starts[i], "Rollout %d should start with the opponent", i)
			require.Equal(t, 1, script.pieces[i], "Rollout %d should see the candidate on a copy", i)
		}
		require.Equal(t, make([]game.Player, game.Rows*game.Cols), board.Cells(), "Board should not change")
	})

	t.Run("falling back to the first legal move without wins", func(t *testing.T) {
		m := NewMonteCarlo(1, NewRandom(WithSeed(1)))
		m.rollout = (&scriptedRollouts{outcomes: []game.Player{B, B, B, B, B, B, B}}).run

		require.Equal(t, 0, m.ChooseMove(game.NewBoard(), A))

		board := game.NewBoard()
		for i := 0; i < game.Rows; i++ {
			require.NoError(t, board.Apply(0, B))
		}
		m.rollout = (&scriptedRollouts{outcomes: []game.Player{A, A, A, A, A, A}}).run
		require.Equal(t, 1, m.ChooseMove(board, B), "Full column 0 cannot be the fallback")
	})

	t.Run("comparing win counts per candidate", func(t *testing.T) {
		script := &scriptedRollouts{outcomes: []game.Player{
			A, B, B, // 0: 1 win
			A, A, B, // 1: 2 wins
			B, A, A, // 2: 2 wins, tie keeps 1
			B, B, B,
			B, B, B,
			B, B, B,
			A, B, B,
		}}
		m := NewMonteCarlo(3, NewRandom(WithSeed(1)), WithRolloutsPerMove())
		m.rollout = script.run

		got := m.ChooseMove(game.NewBoard(), A)

		require.Equal(t, 1, got, "Earliest candidate with the most wins should be chosen")
		require.Len(t, script.starts, 21, "Every candidate gets n rollouts")
	})

	t.Run("rolling out real games", func(t *testing.T) {
		board := parse(t, oneThreat...)
		before := board.Cells()

		for _, m := range []*MonteCarlo{
			NewMonteCarlo(4, NewSimple(WithSeed(2))),
			NewMonteCarlo(4, NewSimple(WithSeed(2)), WithRolloutsPerMove()),
		} {
			require.Contains(t, board.LegalMoves(), m.ChooseMove(board, A))
			require.Equal(t, before, board.Cells(), "Board should not change")
		}
	})

	t.Run("validating its configuration", func(t *testing.T) {
		require.Equal(t, 25, NewMonteCarlo(25, NewRandom()).Rollouts())
		require.Panics(t, func() { NewMonteCarlo(0, NewRandom()) }, "Needs at least one rollout")
		require.Panics(t, func() { NewMonteCarlo(5, nil) }, "Needs a baseline agent")
		require.Panics(t, func() { NewMonteCarlo(5, NewRandom()).ChooseMove(parse(t, full...), A) })
	})
}
