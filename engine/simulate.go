package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"time"
)

// Simulate plays board out to the end, agentA moving for PlayerA and agentB for
// PlayerB, with start to move first. It returns the winner or Draw. board is
// played on in place, so pass a clone you own.
func Simulate(board *game.Board, agentA, agentB Agent, start game.Player) game.Player {
	return play(board, [2]Agent{agentA, agentB}, start, metrics.NewDummyCollector())
}

// play is the turn loop shared by Simulate and Engine.Run.
func play(board *game.Board, agents [2]Agent, player game.Player, collector metrics.Collector) game.Player {
	if !player.Valid() {
		panic(fmt.Sprintf("invalid starting player %v", player))
	}

	collector.Start(player)
	for len(board.LegalMoves()) > 0 {
		agent := agents[player-game.PlayerA]

		begin := time.Now()
		col := agent.ChooseMove(board, player)
		elapsed := time.Since(begin)

		if err := board.Apply(col, player); err != nil {
			panic(fmt.Sprintf("agent for player %v chose an illegal move: %v", player, err))
		}
		collector.AddMove(game.Move{Player: player, Column: col}, elapsed, board)

		if win, _ := board.HasWinAt(col); win {
			return player
		}
		if board.IsDraw() {
			return Draw
		}
		player = player.Opponent()
	}
	return Draw
}
