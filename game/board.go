package game

import (
	"fmt"
	"hash/fnv"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
)

// Board is a Connect-Four grid. Row 0 is the bottom row; pieces fall to the
// lowest empty cell of their column.
type Board struct {
	data *tensor.Dense
	it   [][]Player // it[row][col], views the backing of data
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	backing := make([]Player, Rows*Cols)
	data := tensor.New(tensor.WithShape(Rows, Cols), tensor.WithBacking(backing))
	iter, err := native.Matrix(data)
	if err != nil {
		panic(err)
	}
	return &Board{
		data: data,
		it:   iter.([][]Player),
	}
}

func (b *Board) Dimensions() (rows, cols int) { return Rows, Cols }

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) (Player, error) {
	if row < 0 || row >= Rows {
		return None, errors.Wrapf(ErrOutOfRange, "row %d", row)
	}
	if col < 0 || col >= Cols {
		return None, errors.Wrapf(ErrOutOfRange, "column %d", col)
	}
	return b.it[row][col], nil
}

// Clone returns a deep copy sharing no state with b.
func (b *Board) Clone() *Board {
	b2 := NewBoard()
	copy(b2.raw(), b.raw())
	return b2
}

// LegalMoves lists, in ascending order, the columns that can still take a
// piece. An empty list means the board is full.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Cols)
	for col := 0; col < Cols; col++ {
		if b.it[Rows-1][col] == None {
			moves = append(moves, col)
		}
	}
	return moves
}

// Height returns the number of pieces in col, or -1 if col is out of range.
func (b *Board) Height(col int) int {
	if col < 0 || col >= Cols {
		return -1
	}
	row := 0
	for row < Rows && b.it[row][col] != None {
		row++
	}
	return row
}

// Apply drops a piece for player into col.
func (b *Board) Apply(col int, player Player) error {
	if col < 0 || col >= Cols {
		return errors.Wrapf(ErrInvalidMove, "column %d out of range", col)
	}
	if !player.Valid() {
		return errors.Wrapf(ErrInvalidMove, "invalid player %v", player)
	}
	row := b.Height(col)
	if row == Rows {
		return errors.Wrapf(ErrInvalidMove, "column %d is full", col)
	}
	b.it[row][col] = player
	return nil
}

// Undo removes the topmost piece of col.
func (b *Board) Undo(col int) error {
	if col < 0 || col >= Cols {
		return errors.Wrapf(ErrInvalidMove, "column %d out of range", col)
	}
	row := b.Height(col)
	if row == 0 {
		return errors.Wrapf(ErrInvalidMove, "no move to undo in column %d", col)
	}
	b.it[row-1][col] = None
	return nil
}

// HasWinAt reports whether the topmost piece of col is part of a line of at
// least WinLength pieces of the same owner.
func (b *Board) HasWinAt(col int) (bool, error) {
	if col < 0 || col >= Cols {
		return false, errors.Wrapf(ErrOutOfRange, "column %d", col)
	}
	row := b.Height(col) - 1
	if row < 0 {
		return false, errors.Wrapf(ErrEmptyColumn, "column %d", col)
	}
	owner := b.it[row][col]

	for _, dir := range directions {
		run := 1 + b.count(row, col, dir[0], dir[1], owner) + b.count(row, col, -dir[0], -dir[1], owner)
		if run >= WinLength {
			return true, nil
		}
	}
	return false, nil
}

// horizontal, vertical, ascending and descending diagonals as (drow, dcol)
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// count walks from (row, col), exclusive, in the given step and counts cells
// owned by owner until the first other cell or the edge.
func (b *Board) count(row, col, drow, dcol int, owner Player) int {
	n := 0
	for r, c := row+drow, col+dcol; r >= 0 && r < Rows && c >= 0 && c < Cols; r, c = r+drow, c+dcol {
		if b.it[r][c] != owner {
			break
		}
		n++
	}
	return n
}

// IsDraw reports whether no column can take a piece. It assumes the caller has
// already ruled out a win.
func (b *Board) IsDraw() bool { return len(b.LegalMoves()) == 0 }

// WouldWin reports whether player dropping into col wins. b is unchanged.
func (b *Board) WouldWin(col int, player Player) (bool, error) {
	scratch := b.Clone()
	if err := scratch.Apply(col, player); err != nil {
		return false, err
	}
	return scratch.HasWinAt(col)
}

// WouldDraw reports whether player dropping into col fills the board. It
// assumes the move is not a winning one. b is unchanged.
func (b *Board) WouldDraw(col int, player Player) (bool, error) {
	scratch := b.Clone()
	if err := scratch.Apply(col, player); err != nil {
		return false, err
	}
	return scratch.IsDraw(), nil
}

// Cells returns a row-major copy of the grid, bottom row first.
func (b *Board) Cells() []Player {
	cells := make([]Player, Rows*Cols)
	copy(cells, b.raw())
	return cells
}

func (b *Board) Hash() StateHash {
	h := fnv.New64a()
	raw := b.raw()
	buf := make([]byte, len(raw))
	for i := range raw {
		buf[i] = byte(raw[i])
	}
	h.Write(buf)
	return StateHash(h.Sum64())
}

func (b *Board) raw() []Player { return b.data.Data().([]Player) }

// Format prints the top row first. %s prints the grid only, %v adds column
// numbers underneath.
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for row := Rows - 1; row >= 0; row-- {
			fmt.Fprint(s, "⎢ ")
			for _, cell := range b.it[row] {
				fmt.Fprintf(s, "%s ", cell)
			}
			fmt.Fprint(s, "⎥\n")
		}
		if c == 'v' {
			fmt.Fprint(s, "  ")
			for col := 0; col < Cols; col++ {
				fmt.Fprintf(s, "%d ", col)
			}
			fmt.Fprint(s, "\n")
		}
	}
}
