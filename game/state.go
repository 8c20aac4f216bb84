package game

import (
	"encoding/binary"
	"hash/fnv"
	"maps"
	"math"
	"slices"
)

// State maps every column to all values played into it so far, in play order with
// both players interleaved after the initial seed entry. It only ever grows.
type State map[Column][]float64

// NewState returns a state whose columns each hold the single seed value 0.
func NewState(columns ...Column) State {
	if len(columns) == 0 {
		columns = DefaultColumns
	}
	s := make(State, len(columns))
	for _, col := range columns {
		s[col] = []float64{0}
	}
	return s
}

// Columns returns the column identifiers in sorted order.
func (s State) Columns() []Column {
	return slices.Sorted(maps.Keys(s))
}

// TurnNumber derives the turn about to be played from the history length.
// The seed entry plus two entries per completed turn gives (n-1)/2+1.
func (s State) TurnNumber() int {
	n := 0
	for _, values := range s {
		n = len(values)
		break
	}
	turn := (n-1)/2 + 1
	if turn < 1 {
		return 1
	}
	return turn
}

func (s State) Copy() State {
	c := make(State, len(s))
	for col, values := range s {
		c[col] = slices.Clone(values)
	}
	return c
}

// Apply appends a move to the state.
func (s State) Apply(move Move) {
	for col, value := range move {
		s[col] = append(s[col], value)
	}
}

func (s State) Sum(col Column) float64 {
	sum := 0.0
	for _, v := range s[col] {
		sum += v
	}
	return sum
}

// Contains reports whether value was played into any column.
func (s State) Contains(value float64) bool {
	for _, values := range s {
		if slices.Contains(values, value) {
			return true
		}
	}
	return false
}

// frequencies counts every exact value across all columns.
func (s State) frequencies() map[float64]int {
	counts := make(map[float64]int)
	for _, values := range s {
		for _, v := range values {
			counts[v]++
		}
	}
	return counts
}

func (s State) Hash() StateHash {
	hasher := fnv.New64a()

	for _, col := range s.Columns() {
		hasher.Write([]byte(col))
		for _, v := range s[col] {
			binary.Write(hasher, binary.LittleEndian, math.Float64bits(v))
		}
	}

	return StateHash(hasher.Sum64())
}
