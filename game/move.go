package game

import "fmt"

// Move holds one value per column for a single turn.
type Move map[Column]float64

// Uniform returns a move playing value in every column of the state.
func Uniform(s State, value float64) Move {
	m := make(Move, len(s))
	for col := range s {
		m[col] = value
	}
	return m
}

// Validate checks the move covers exactly the state's columns with in-range values.
func (m Move) Validate(s State) error {
	if len(m) != len(s) {
		return fmt.Errorf("move has %d columns, state has %d", len(m), len(s))
	}
	for col := range s {
		v, ok := m[col]
		if !ok {
			return fmt.Errorf("move is missing column %s", col)
		}
		if v < -Boundary || v > Boundary {
			return fmt.Errorf("value %v in column %s is out of range", v, col)
		}
	}
	return nil
}

// Sanitize returns a legal version of the move: extra columns dropped, missing
// columns filled with 0, values clamped and rounded.
func (m Move) Sanitize(s State) Move {
	legal := make(Move, len(s))
	for col := range s {
		legal[col] = Round(Clamp(m[col]))
	}
	return legal
}
