package game

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	ZeroMeanTolerance = 0.000001
	TrendMinR         = 0.9
	TrendMaxP         = 0.05
)

// Satisfied reports whether the victory condition holds for its column in the final state.
func Satisfied(s State, v Victory) bool {
	values, ok := s[v.Column]
	if !ok || len(values) == 0 {
		return false
	}

	switch v.Condition {
	case Max:
		return uniqueExtremeIn(s, v.Column, true)
	case Min:
		return uniqueExtremeIn(s, v.Column, false)
	case Linear:
		return isTrend(values)
	case Quadratic:
		squared := make([]float64, len(values))
		for i, x := range values {
			squared[i] = x * x
		}
		return isTrend(squared)
	case ZeroM:
		return math.Abs(stat.Mean(values, nil)) < ZeroMeanTolerance
	case SumPos:
		return floats.Sum(values) > 0
	case SumNeg:
		return floats.Sum(values) < 0
	default:
		return false
	}
}

// Outcome returns 1 or 2 for the single winning player, or 0 for a draw.
func Outcome(s State, v1, v2 Victory) int {
	win1, win2 := Satisfied(s, v1), Satisfied(s, v2)
	switch {
	case win1 && !win2:
		return 1
	case win2 && !win1:
		return 2
	default:
		return 0
	}
}

// uniqueExtremeIn checks that the largest (or smallest) value played exactly
// once anywhere sits in col. Repeated values never count, however extreme.
func uniqueExtremeIn(s State, col Column, largest bool) bool {
	unique := s.uniqueValues()
	if len(unique) == 0 {
		return false
	}
	extreme := unique[0]
	if largest {
		extreme = unique[len(unique)-1]
	}
	return slices.Contains(s[col], extreme)
}

// isTrend reports a strong positive correlation between values and their play index.
func isTrend(values []float64) bool {
	n := len(values)
	if n < 3 {
		return false
	}
	index := make([]float64, n)
	for i := range index {
		index[i] = float64(i)
	}

	r := stat.Correlation(index, values, nil)
	if math.IsNaN(r) {
		return false
	}
	return r >= TrendMinR && pValue(r, n) <= TrendMaxP
}

// pValue is the two-sided p-value of Pearson's r for n samples.
func pValue(r float64, n int) float64 {
	if 1-r*r <= 0 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(t))
}
