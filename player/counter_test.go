package player

import (
	"testing"

	"colduel/game"

	"github.com/stretchr/testify/require"
)

func TestCounterEnemyMix(t *testing.T) {
	t.Run("spoiling a unique max", func(t *testing.T) {
		p := newPlayerAt(5, game.Victory{Condition: game.SumPos, Column: "A"})
		state := game.State{"A": {0, 1, 1}, "B": {0, 900, 1}, "C": {0, 1, 1}}

		got := p.counterEnemyMix(state, game.Move{"A": 1023})

		require.Equal(t, game.Move{"A": 1023, "B": 900, "C": 1023}, got)
		require.Equal(t, 1, p.uniqueMaxCount["B"])
		require.Zero(t, p.uniqueMinCount["B"])
	})

	t.Run("spoiling a unique min", func(t *testing.T) {
		p := newPlayerAt(5, game.Victory{Condition: game.SumPos, Column: "A"})
		state := game.State{"A": {0, 1, 1}, "B": {0, 1, 1}, "C": {0, -900, 1}}

		got := p.counterEnemyMix(state, game.Move{"A": 1023})

		require.Equal(t, game.Move{"A": 1023, "B": 1023, "C": -900}, got)
		require.Equal(t, 1, p.uniqueMinCount["C"])
	})

	t.Run("balanced columns get the boundary", func(t *testing.T) {
		p := newPlayerAt(5, game.Victory{Condition: game.SumPos, Column: "A"})
		state := game.State{"A": {0, 1, 1}, "B": {0, 900, -900}}

		got := p.counterEnemyMix(state, game.Move{"A": 1023})

		require.Equal(t, 1023.0, got["B"], "Zero sum column should spoil SumNeg")
		require.Zero(t, p.uniqueMaxCount["B"])
	})

	t.Run("never overwriting decided columns", func(t *testing.T) {
		p := newPlayerAt(10, game.Victory{Condition: game.ZeroM, Column: "B"})
		p.enemy[game.Max] = "B"
		state := game.State{"A": {0, 1023, 1023}, "B": {0, 1023, 1023}}

		got := p.counterEnemyMix(state, game.Move{"B": -12.345678})

		require.Equal(t, -12.34568, got["B"], "Decided value should only be rounded")
	})

	t.Run("last turn denies a suspected Max column and floods the rest", func(t *testing.T) {
		p := newPlayerAt(10, game.Victory{Condition: game.SumPos, Column: "A"})
		p.enemy[game.Max] = "B"
		state := game.State{
			"A": {0, 1023, 1023},
			"B": {0, 1023, 1023},
			"C": {0, 1023, 1023},
			"D": {0, 1023, 1023},
		}

		got := p.counterEnemyMix(state, game.Move{"A": 1023})

		require.Equal(t, game.Move{"A": 1023, "B": 1022.99998, "C": 1022.99999, "D": 1022.99998}, got)
	})

	t.Run("last turn replays an existing unique max into the suspected column", func(t *testing.T) {
		p := newPlayerAt(10, game.Victory{Condition: game.SumPos, Column: "A"})
		p.enemy[game.Max] = "B"
		state := game.State{"A": {0, 1023, 1023}, "B": {0, 1022.5, 1}, "C": {0, 1, 3}}

		got := p.counterEnemyMix(state, game.Move{"A": 1023})

		require.Equal(t, 1022.5, got["B"])
		require.Equal(t, 1022.99999, got["C"])
	})

	t.Run("last turn floods only once when also playing Max", func(t *testing.T) {
		p := newPlayerAt(10, game.Victory{Condition: game.Max, Column: "A"})
		p.enemy[game.Max] = "B"
		state := game.State{
			"A": {0, 1023, 1023},
			"B": {0, 1023, 1023},
			"C": {0, 1023, 1023},
			"D": {0, 1023, 1023},
		}

		got := p.counterEnemyMix(state, game.Move{"A": 1022.99997})

		require.Equal(t, game.Move{"A": 1022.99997, "B": 1022.99998, "C": 1022.99999, "D": 1023}, got)
	})

	t.Run("last turn denies a suspected Min column", func(t *testing.T) {
		p := newPlayerAt(10, game.Victory{Condition: game.SumPos, Column: "A"})
		p.enemy[game.Min] = "C"
		state := game.State{"A": {0, 5, 5}, "B": {0, 5, 5}, "C": {0, 5, 5}}

		got := p.counterEnemyMix(state, game.Move{"A": 1023})

		require.Equal(t, game.Move{"A": 1023, "B": -1023, "C": -1022.99999}, got)
	})
}

func TestCheckEnemyCol(t *testing.T) {
	t.Run("detecting SumPos while moving second", func(t *testing.T) {
		p := NewPlayer()
		victory := game.Victory{Condition: game.Min, Column: "A"}
		state := game.NewState()
		for turn := 1; turn <= 3; turn++ {
			move := p.TakeTurn(state.Copy(), victory)
			state.Apply(game.Move{"A": 5, "B": 5, "C": 1023, "D": 5, "E": 5})
			state.Apply(move)
		}

		require.False(t, p.FirstToMove())
		col, ok := p.Suspects(game.SumPos)
		require.True(t, ok)
		require.Equal(t, game.Column("C"), col)
		_, ok = p.Suspects(game.SumNeg)
		require.False(t, ok)
	})

	t.Run("detecting SumNeg while moving first", func(t *testing.T) {
		p := newPlayerAt(3, game.Victory{Condition: game.Max, Column: "A"})
		state := game.State{"A": {0, 1, -1023, 1, -1023}, "B": {0, 1, -1023, 1, -1023}}

		p.checkEnemyCol(state)

		col, ok := p.Suspects(game.SumNeg)
		require.True(t, ok)
		require.Equal(t, game.Column("B"), col)
	})

	t.Run("ignoring the own column", func(t *testing.T) {
		p := newPlayerAt(3, game.Victory{Condition: game.SumPos, Column: "A"})
		p.checkEnemyCol(game.State{"A": {0, 1, 1023, 1, 1023}})

		_, ok := p.Suspects(game.SumPos)
		require.False(t, ok)
	})

	t.Run("detecting Max and Min from spoil counts", func(t *testing.T) {
		p := newPlayerAt(9, game.Victory{Condition: game.SumPos, Column: "A"})
		p.uniqueMaxCount = map[game.Column]int{"D": 2, "C": 2, "B": 1}
		p.uniqueMinCount = map[game.Column]int{"E": 1}

		p.checkEnemyCol(game.NewState())

		col, ok := p.Suspects(game.Max)
		require.True(t, ok)
		require.Equal(t, game.Column("C"), col, "Ties resolve to the first column")
		_, ok = p.Suspects(game.Min)
		require.False(t, ok, "One spoil is not enough evidence")
	})

	t.Run("skipping other turns", func(t *testing.T) {
		p := newPlayerAt(8, game.Victory{Condition: game.SumPos, Column: "A"})
		p.uniqueMaxCount = map[game.Column]int{"B": 5}

		p.checkEnemyCol(game.NewState())

		require.Empty(t, p.enemy)
	})

	t.Run("never revising a belief", func(t *testing.T) {
		p := NewPlayer()
		p.suspect(game.SumPos, "C")
		p.suspect(game.SumPos, "D")

		col, _ := p.Suspects(game.SumPos)
		require.Equal(t, game.Column("C"), col)
	})
}
