package agent

import (
	"pushfour/experiments/metrics"
	"pushfour/game"
)

// Agent picks moves for one side of a game.
type Agent interface {
	// Choose returns a move for the player to move. The move resolves against board.
	Choose(board *game.Board) (game.LegalMove, error)
}

// Reporter is implemented by agents that measure their own decisions.
type Reporter interface {
	LastMetric() metrics.SearchMetric
}
