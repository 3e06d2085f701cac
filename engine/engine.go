package engine

import "connect4/game"

// Agent chooses a column for player. Implementations must not mutate board and
// may assume player is valid and at least one column is open.
type Agent interface {
	ChooseMove(board *game.Board, player game.Player) int
}

// Draw is the outcome of a game without a winner.
const Draw = game.None
