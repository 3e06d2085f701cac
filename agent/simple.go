package agent

import "connect4/game"

// Simple plays a winning move when there is one and a random move otherwise.
//
// When several moves win, the last one in column order is played.
type Simple struct {
	fallback *Random
}

func NewSimple(options ...Option) *Simple {
	return &Simple{fallback: NewRandom(options...)}
}

func (s *Simple) ChooseMove(board *game.Board, player game.Player) int {
	moves := legalMoves(board, player)

	winning := -1
	for _, col := range moves {
		if wins(board, col, player) {
			winning = col
		}
	}
	if winning != -1 {
		return winning
	}
	return s.fallback.pick(moves)
}
