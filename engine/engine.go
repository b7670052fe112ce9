package engine

import (
	"pushfour/experiments/metrics"
	"pushfour/game"
)

type Engine interface {
	// Run plays a game to the end and returns the winner, or game.Empty for a draw
	Run() (winner game.Entry, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
