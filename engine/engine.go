package engine

import (
	"context"

	"colduel/experiments/metrics"
	"colduel/game"
)

type Engine interface {
	// Run plays or submits one match and reports its outcome
	Run(ctx context.Context) (Result, error)
}

type Result struct {
	Winner int     // Seat of the single winner, 0 for a draw
	Wins   [2]bool // Whether each seat's victory condition holds
	State  game.State
	Hash   game.StateHash
	Judge  string // Raw result reported by a remote judge

	Game  metrics.GameMetric
	Moves []metrics.MoveMetric
}
