package player

import (
	"slices"

	"colduel/game"
)

// Column histories start with one seed entry, then alternate first mover, second mover.
const (
	firstMoverOffset  = 1
	secondMoverOffset = 2
)

// everyOther returns every second value starting at offset.
func everyOther(values []float64, offset int) []float64 {
	var out []float64
	for i := offset; i < len(values); i += 2 {
		out = append(out, values[i])
	}
	return out
}

// checkIsFirst compares both movers' slots of every column against what this
// player actually played. The order stays unknown while both match, which
// happens as long as both players played identical values.
func (p *Player) checkIsFirst(state game.State) (first, known bool) {
	first, second := true, true
	for col, values := range state {
		first = first && slices.Equal(everyOther(values, firstMoverOffset), p.played[col])
		second = second && slices.Equal(everyOther(values, secondMoverOffset), p.played[col])
	}
	if first && second {
		return p.firstToMove, false
	}
	return first, true
}

// opponentValues returns only the opponent's contributions to a column.
func (p *Player) opponentValues(state game.State, col game.Column) []float64 {
	if p.firstToMove {
		return everyOther(state[col], secondMoverOffset)
	}
	return everyOther(state[col], firstMoverOffset)
}
