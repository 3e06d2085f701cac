package game

// Board geometry. The grid never changes size after construction.
const (
	Rows      = 6
	Cols      = 7
	WinLength = 4 // pieces in a line needed to win
)

type StateHash uint64

// Player is both the owner of a piece and the value of a cell. None marks an
// empty cell.
type Player int32

const (
	None Player = iota
	PlayerA
	PlayerB
)
