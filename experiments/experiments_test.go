package experiments

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"colduel/experiments/metrics"
	"colduel/game"

	"github.com/stretchr/testify/require"
)

func smallMatrix() Matrix {
	m := StrategicVsRandom(2, 7)
	m.Conditions1 = []game.Condition{game.SumPos, game.Max}
	m.Conditions2 = []game.Condition{game.SumNeg}
	return m
}

func TestRunConditionMatrix(t *testing.T) {
	ctx := context.Background()

	t.Run("plays both seatings of every pair", func(t *testing.T) {
		run, err := RunConditionMatrix(ctx, smallMatrix())
		require.NoError(t, err)

		require.NotEmpty(t, run.ID)
		require.Len(t, run.Games, 2*1*2*2)
		require.Len(t, run.Moves, len(run.Games)*2*game.NumTurns)

		for i, g := range run.Games {
			require.Equal(t, i, g.ID)
			require.NotEqual(t, g.Victory1.Column, g.Victory2.Column, "Target columns should be distinct")
			if i%2 == 0 {
				require.Equal(t, 0, g.Agent1, "Even games seat the first agent first")
			} else {
				require.Equal(t, 1, g.Agent1, "Odd games swap seats")
				require.Equal(t, run.Games[i-1].Victory1, g.Victory2)
			}
		}

		total := 0
		for _, p := range run.Summary.Pairs() {
			total += run.Summary.Tally(p.Condition1, p.Condition2).Games()
		}
		require.Equal(t, len(run.Games), total)
	})

	t.Run("same seed draws the same columns", func(t *testing.T) {
		a, err := RunConditionMatrix(ctx, smallMatrix())
		require.NoError(t, err)
		b, err := RunConditionMatrix(ctx, smallMatrix())
		require.NoError(t, err)

		require.NotEqual(t, a.ID, b.ID)
		for i := range a.Games {
			require.Equal(t, a.Games[i].Victory1, b.Games[i].Victory1)
			require.Equal(t, a.Games[i].Hash, b.Games[i].Hash)
		}
	})

	t.Run("too few columns", func(t *testing.T) {
		m := smallMatrix()
		m.Columns = []game.Column{"A"}

		_, err := RunConditionMatrix(ctx, m)
		require.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := RunConditionMatrix(cancelled, smallMatrix())
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPersist(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	run, err := RunConditionMatrix(ctx, smallMatrix())
	require.NoError(t, err)

	store, err := metrics.NewStore(filepath.Join(root, "results.db"))
	require.NoError(t, err)
	defer store.Close()

	dir, err := Persist(ctx, run, root, store)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(root, "strategic_vs_random", run.ID), dir)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	saved, err := store.GameRecords(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, saved, len(run.Games))
}

func TestSummary(t *testing.T) {
	s := NewSummary()
	s.Add(game.Min, game.Max, 1)
	s.Add(game.Min, game.Max, 0)
	s.Add(game.Max, game.Max, 2)

	require.Equal(t, Tally{Wins: [2]int{1, 0}, Draws: 1}, s.Tally(game.Min, game.Max))
	require.Equal(t, Tally{}, s.Tally(game.ZeroM, game.Max))
	require.Equal(t, []Pair{{game.Max, game.Max}, {game.Min, game.Max}}, s.Pairs())

	var buf bytes.Buffer
	require.NoError(t, s.WriteTable(&buf))
	require.Contains(t, buf.String(), "Min")
	require.Contains(t, buf.String(), "CONDITION1")
}
