package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	t.Run("rounding to five decimals", func(t *testing.T) {
		require.Equal(t, 1022.99999, Round(1023.0-Epsilon))
		require.Equal(t, 0.0, Round(0.0000001), "Sub-precision values should round to zero")
		require.Equal(t, -1.23457, Round(-1.234567))
	})

	t.Run("equal decimals round to the same float", func(t *testing.T) {
		a := Round(Boundary - 3*Epsilon)
		b := NextAfter(NextAfter(NextAfter(Boundary, -1), -1), -1)
		require.Equal(t, a, b, "Stepping and direct computation should agree exactly")
	})
}

func TestClamp(t *testing.T) {
	require.Equal(t, Boundary, Clamp(5000))
	require.Equal(t, -Boundary, Clamp(-5000))
	require.Equal(t, 12.5, Clamp(12.5))
}

func TestNextAfter(t *testing.T) {
	t.Run("antisymmetric away from boundaries", func(t *testing.T) {
		for _, x := range []float64{0, 1.5, -3.123456, 512.00001, -1022.5} {
			require.Equal(t, Round(x), NextAfter(NextAfter(x, 1), -1), "x=%v", x)
			require.Equal(t, Round(x), NextAfter(NextAfter(x, -1), 1), "x=%v", x)
		}
	})

	t.Run("steps by epsilon", func(t *testing.T) {
		require.Equal(t, 1022.99999, NextAfter(Boundary, -1))
		require.Equal(t, -1022.99999, NextAfter(-Boundary, 1))
	})
}

func TestNextUniqueMax(t *testing.T) {
	t.Run("boundary when unused", func(t *testing.T) {
		require.Equal(t, Boundary, NextUniqueMax(NewState()))
	})

	t.Run("skipping played values", func(t *testing.T) {
		s := NewState("A", "B")
		s["A"] = append(s["A"], 1023.0, 1022.99998)
		s["B"] = append(s["B"], 1022.99999)

		got := NextUniqueMax(s)

		require.Equal(t, 1022.99997, got)
		require.False(t, s.Contains(got), "Should never return a played value")
	})
}

func TestNextUniqueMin(t *testing.T) {
	s := NewState("A", "B")
	s["A"] = append(s["A"], -1023.0)
	s["B"] = append(s["B"], -1022.99999, 4)

	got := NextUniqueMin(s)

	require.Equal(t, -1022.99998, got)
	require.False(t, s.Contains(got), "Should never return a played value")
}

func TestNextUnplayedBelow(t *testing.T) {
	s := NewState("A")
	s["A"] = append(s["A"], 10.0, 9.99999)

	require.Equal(t, 9.99998, NextUnplayedBelow(s, 10.0))
	require.Equal(t, 10.00001, NextUnplayedAbove(s, 9.99999))
}

func TestCurrentUniqueExtremes(t *testing.T) {
	t.Run("sentinels without unique values", func(t *testing.T) {
		s := NewState("A", "B")

		require.Equal(t, -Boundary, CurrentUniqueMax(s), "Seeds are shared so nothing is unique")
		require.Equal(t, Boundary, CurrentUniqueMin(s))
	})

	t.Run("ignoring repeated extremes", func(t *testing.T) {
		s := NewState("A", "B")
		s["A"] = append(s["A"], 1023, 7, -3)
		s["B"] = append(s["B"], 1023, 5, -1023, -1023)

		require.Equal(t, 7.0, CurrentUniqueMax(s))
		require.Equal(t, -3.0, CurrentUniqueMin(s))
	})
}
