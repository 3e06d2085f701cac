package game

import "fmt"

// Valid reports whether p can own a piece.
func (p Player) Valid() bool { return p == PlayerA || p == PlayerB }

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return None
}

func (p Player) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 'd': // used in logs and records
		switch p {
		case None:
			fmt.Fprint(s, "None")
		case PlayerA:
			fmt.Fprint(s, "A")
		case PlayerB:
			fmt.Fprint(s, "B")
		default:
			fmt.Fprintf(s, "Player(%d)", int32(p))
		}
	case 's': // used in board display
		fmt.Fprintf(s, "%c", p.symbol())
	}
}

func (p Player) symbol() rune {
	switch p {
	case PlayerA:
		return 'X'
	case PlayerB:
		return 'O'
	}
	return '.'
}
