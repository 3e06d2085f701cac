package metrics

import (
	"connect4/game"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   game.Player
	Column   int
	Duration time.Duration // time the agent took to choose
	Hash     game.StateHash
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // game.None on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(starting game.Player)
	AddMove(move game.Move, duration time.Duration, board *game.Board)
	Complete(winner game.Player) (GameMetric, []MoveMetric)
}

type collector struct {
	starting  game.Player
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(starting game.Player) {
	m.starting = starting
	m.startTime = time.Now()
	m.moves = make([]MoveMetric, 0, game.Rows*game.Cols)
}

func (m *collector) AddMove(move game.Move, duration time.Duration, board *game.Board) {
	m.moves = append(m.moves, MoveMetric{
		Step:     len(m.moves) + 1,
		Player:   move.Player,
		Column:   move.Column,
		Duration: duration,
		Hash:     board.Hash(),
	})
}

func (m *collector) Complete(winner game.Player) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.starting,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(m.moves),
	}, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(starting game.Player)                                  {}
func (m *dummyCollector) AddMove(move game.Move, d time.Duration, board *game.Board) {}
func (m *dummyCollector) Complete(winner game.Player) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
