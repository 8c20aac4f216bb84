package game

import (
	"math"
	"slices"
)

var scale = math.Pow10(Precision)

// Round rounds x to the game's precision. Values that are equal at that
// precision round to the same float64, which exact-match uniqueness relies on.
func Round(x float64) float64 {
	return math.Round(x*scale) / scale
}

// Clamp limits x to [-Boundary, Boundary].
func Clamp(x float64) float64 {
	return min(max(x, -Boundary), Boundary)
}

// NextAfter steps x by one Epsilon towards dir (+1 or -1).
func NextAfter(x float64, dir int) float64 {
	return Round(x + float64(dir)*Epsilon)
}

func ticks(x float64) int64 {
	return int64(math.Round(x * scale))
}

func fromTicks(t int64) float64 {
	return float64(t) / scale
}

// NextUniqueMax returns the largest value in range not yet played into any column.
// If every value is taken it returns -Boundary.
func NextUniqueMax(s State) float64 {
	return nextUnplayed(s, ticks(Boundary), -1)
}

// NextUniqueMin returns the smallest value in range not yet played into any column.
// If every value is taken it returns Boundary.
func NextUniqueMin(s State) float64 {
	return nextUnplayed(s, ticks(-Boundary), 1)
}

// NextUnplayedBelow returns the largest unplayed value strictly below x.
func NextUnplayedBelow(s State, x float64) float64 {
	return nextUnplayed(s, ticks(x)-1, -1)
}

// NextUnplayedAbove returns the smallest unplayed value strictly above x.
func NextUnplayedAbove(s State, x float64) float64 {
	return nextUnplayed(s, ticks(x)+1, 1)
}

func nextUnplayed(s State, start int64, dir int64) float64 {
	played := make(map[int64]struct{})
	for _, values := range s {
		for _, v := range values {
			played[ticks(v)] = struct{}{}
		}
	}

	lo, hi := ticks(-Boundary), ticks(Boundary)
	t := start
	for ; t >= lo && t <= hi; t += dir {
		if _, ok := played[t]; !ok {
			return fromTicks(t)
		}
	}
	return fromTicks(t - dir)
}

// CurrentUniqueMax returns the largest value played exactly once across the
// whole state, or -Boundary when no value is unique.
func CurrentUniqueMax(s State) float64 {
	unique := s.uniqueValues()
	if len(unique) == 0 {
		return -Boundary
	}
	return unique[len(unique)-1]
}

// CurrentUniqueMin returns the smallest value played exactly once across the
// whole state, or Boundary when no value is unique.
func CurrentUniqueMin(s State) float64 {
	unique := s.uniqueValues()
	if len(unique) == 0 {
		return Boundary
	}
	return unique[0]
}

func (s State) uniqueValues() []float64 {
	var unique []float64
	for v, n := range s.frequencies() {
		if n == 1 {
			unique = append(unique, v)
		}
	}
	slices.Sort(unique)
	return unique
}
