package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted plays its columns in order.
type scripted struct {
	cols  []int
	calls int
}

func (s *scripted) ChooseMove(board *game.Board, player game.Player) int {
	col := s.cols[s.calls]
	s.calls++
	return col
}

// untouchable fails the test if it is ever asked for a move.
type untouchable struct{ t *testing.T }

func (u untouchable) ChooseMove(board *game.Board, player game.Player) int {
	u.t.Fatalf("agent should not be consulted for %v", player)
	return -1
}

var drawn = []string{
	"XOXOXOX",
	"OOXOXOO",
	"XXXOXOX",
	"OXOXOXO",
	"XOOXOOX",
	"XXOXOXX",
}

func parse(t *testing.T, rows ...string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestSimulate(t *testing.T) {
	t.Run("full board is a draw without consulting agents", func(t *testing.T) {
		board := parse(t, drawn...)

		got := Simulate(board, untouchable{t}, untouchable{t}, game.PlayerA)

		require.Equal(t, Draw, got, "Board without legal moves should be a draw")
	})

	t.Run("first player to connect four wins", func(t *testing.T) {
		a := &scripted{cols: []int{0, 0, 0, 0}}
		b := &scripted{cols: []int{1, 1, 1}}

		got := Simulate(game.NewBoard(), a, b, game.PlayerA)

		require.Equal(t, game.PlayerA, got, "PlayerA stacks four first")
		require.Equal(t, 4, a.calls)
		require.Equal(t, 3, b.calls, "Game should stop at the winning move")
	})

	t.Run("starting player moves first", func(t *testing.T) {
		a := &scripted{cols: []int{0, 0, 0}}
		b := &scripted{cols: []int{1, 1, 1, 1}}
		board := game.NewBoard()

		got := Simulate(board, a, b, game.PlayerB)

		require.Equal(t, game.PlayerB, got)
		bottom, err := board.Get(0, 1)
		require.NoError(t, err)
		require.Equal(t, game.PlayerB, bottom, "Simulation plays on the board it is given")
	})

	t.Run("filling the last cell is a draw", func(t *testing.T) {
		board := parse(t, drawn...)
		require.NoError(t, board.Undo(6))

		got := Simulate(board, &scripted{cols: []int{6}}, untouchable{t}, game.PlayerA)

		require.Equal(t, Draw, got)
	})

	t.Run("panics on an illegal move", func(t *testing.T) {
		board := game.NewBoard()
		require.Panics(t, func() {
			Simulate(board, &scripted{cols: []int{7}}, untouchable{t}, game.PlayerA)
		}, "Out of range column is a contract violation")
	})

	t.Run("panics on an invalid starting player", func(t *testing.T) {
		require.Panics(t, func() {
			Simulate(game.NewBoard(), untouchable{t}, untouchable{t}, game.None)
		})
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("recording a finished game", func(t *testing.T) {
		a := &scripted{cols: []int{3, 3, 3}}
		b := &scripted{cols: []int{2, 2, 2, 2}}
		e := LocalEngine(a, b, WithStartingPlayer(game.PlayerB), WithMetrics())

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.PlayerB, winner)
		require.Equal(t, game.PlayerB, gameMetric.StartingPlayer)
		require.Equal(t, game.PlayerB, gameMetric.Winner)
		require.Equal(t, 7, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 7)
		require.Equal(t, game.PlayerB, moveMetrics[0].Player, "First move belongs to the starting player")
		require.Equal(t, 2, moveMetrics[0].Column)
		require.Equal(t, game.PlayerA, moveMetrics[1].Player, "Players should alternate")
		require.Equal(t, e.Board.Hash(), moveMetrics[6].Hash, "Last record should match the final board")
	})

	t.Run("starting from a copy of the given board", func(t *testing.T) {
		start := parse(t, drawn...)
		require.NoError(t, start.Undo(6))
		e := LocalEngine(&scripted{cols: []int{6}}, untouchable{t}, WithBoard(start))

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, Draw, winner)
		require.Equal(t, metrics.GameMetric{}, gameMetric, "Metrics are off by default")
		require.Empty(t, moveMetrics)
		require.Equal(t, 5, start.Height(6), "Engine should not play on the caller's board")
		require.Equal(t, 6, e.Board.Height(6))
	})

	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(untouchable{t}, nil) })
	})
}
