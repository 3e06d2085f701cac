package game

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseBoard builds a board from its text form, top row first, one string per
// row. Cells are '.' (empty), 'X' (PlayerA) or 'O' (PlayerB); spaces and the
// border drawn by Format are ignored. Every column must be filled from the
// bottom without gaps.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != Rows {
		return nil, errors.Wrapf(ErrMalformedBoard, "got %d rows, want %d", len(rows), Rows)
	}

	b := NewBoard()
	for i, line := range rows {
		row := Rows - 1 - i
		cells := []rune(strip.Replace(line))
		if len(cells) != Cols {
			return nil, errors.Wrapf(ErrMalformedBoard, "row %d has %d cells, want %d", row, len(cells), Cols)
		}
		for col, r := range cells {
			p, ok := parseCell(r)
			if !ok {
				return nil, errors.Wrapf(ErrMalformedBoard, "unknown symbol %q at row %d column %d", r, row, col)
			}
			b.it[row][col] = p
		}
	}

	for col := 0; col < Cols; col++ {
		for row := b.Height(col); row < Rows; row++ {
			if b.it[row][col] != None {
				return nil, errors.Wrapf(ErrMalformedBoard, "floating piece at row %d column %d", row, col)
			}
		}
	}
	return b, nil
}

var strip = strings.NewReplacer(" ", "", "⎢", "", "⎥", "")

func parseCell(r rune) (Player, bool) {
	switch r {
	case '.', '·':
		return None, true
	case 'X', 'x':
		return PlayerA, true
	case 'O', 'o':
		return PlayerB, true
	}
	return None, false
}
