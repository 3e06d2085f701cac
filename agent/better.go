package agent

import "connect4/game"

// Better plays the first winning move if there is one. Otherwise it plays the
// first move after which the opponent has no immediate win, or a random move
// when every move hands the opponent a win.
type Better struct {
	fallback *Random
}

func NewBetter(options ...Option) *Better {
	return &Better{fallback: NewRandom(options...)}
}

func (b *Better) ChooseMove(board *game.Board, player game.Player) int {
	moves := legalMoves(board, player)
	if len(moves) == 1 {
		return moves[0]
	}

	for _, col := range moves {
		if wins(board, col, player) {
			return col
		}
	}

	opponent := player.Opponent()
	for _, col := range moves {
		scratch := board.Clone()
		if err := scratch.Apply(col, player); err != nil {
			panic(err)
		}
		if safe(scratch, opponent) {
			return col
		}
	}
	return b.fallback.pick(moves)
}

// safe reports whether no reply by opponent wins on board.
func safe(board *game.Board, opponent game.Player) bool {
	for _, reply := range board.LegalMoves() {
		if wins(board, reply, opponent) {
			return false
		}
	}
	return true
}
