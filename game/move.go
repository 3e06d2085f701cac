package game

import "fmt"

// Move represents a piece dropped into a column by a player.
type Move struct {
	Player Player
	Column int
}

func (m Move) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", m.Player, m.Column) }
