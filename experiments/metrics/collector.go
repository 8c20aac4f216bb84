package metrics

import (
	"time"

	"colduel/game"
)

type MoveMetric struct {
	Step      int // Turn number
	Player    int // Seat, 1 moves first
	Duration  time.Duration
	Sanitized bool // Whether the engine had to repair an illegal move
}

type GameMetric struct {
	Victory1   game.Victory
	Victory2   game.Victory
	Winner     int // Seat of the single winner, 0 for a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Hash       game.StateHash // Fingerprint of the final state
}

// Collector times a single move decision.
type Collector interface {
	Start()
	Complete(step, player int, sanitized bool) MoveMetric
}

type collector struct {
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) Complete(step, player int, sanitized bool) MoveMetric {
	return MoveMetric{
		Step:      step,
		Player:    player,
		Duration:  time.Since(m.startTime),
		Sanitized: sanitized,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start() {}
func (m *dummyCollector) Complete(step, player int, sanitized bool) MoveMetric {
	return MoveMetric{Step: step, Player: player, Sanitized: sanitized}
}
