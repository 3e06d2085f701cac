package game

import "github.com/pkg/errors"

// Board failures. Returned errors wrap one of these with context, so match them
// with errors.Is.
var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrInvalidMove    = errors.New("invalid move")
	ErrEmptyColumn    = errors.New("no piece in column")
	ErrMalformedBoard = errors.New("malformed board")
)
