package experiments

import (
	"context"
	"fmt"

	"colduel/engine"
	"colduel/experiments/metrics"
	"colduel/game"
	"colduel/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 10 // Per condition pair and seating

// Matrix plays every condition of Conditions1 for Agents[0] against every
// condition of Conditions2 for Agents[1], with both seatings.
type Matrix struct {
	Name        string
	Agents      [2]metrics.AgentConfig
	Conditions1 []game.Condition
	Conditions2 []game.Condition
	Columns     []game.Column
	Games       int
	Turns       int
	Seed        uint64 // Seeds the target column draws
}

type Run struct {
	ID      string
	Matrix  Matrix
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary *Summary
}

// StrategicVsRandom pits the strategic player against the random sparring partner
// on every pair of conditions.
func StrategicVsRandom(games int, seed uint64) Matrix {
	return Matrix{
		Name: "strategic_vs_random",
		Agents: [2]metrics.AgentConfig{
			{ID: 0, Kind: metrics.Strategic},
			{ID: 1, Kind: metrics.Random, Seed: seed},
		},
		Conditions1: game.Conditions,
		Conditions2: game.Conditions,
		Games:       games,
		Seed:        seed,
	}
}

// SelfPlay pits the strategic player against itself on every pair of conditions.
func SelfPlay(games int, seed uint64) Matrix {
	return Matrix{
		Name: "self_play",
		Agents: [2]metrics.AgentConfig{
			{ID: 0, Kind: metrics.Strategic},
			{ID: 1, Kind: metrics.Strategic},
		},
		Conditions1: game.Conditions,
		Conditions2: game.Conditions,
		Games:       games,
		Seed:        seed,
	}
}

func RunConditionMatrix(ctx context.Context, m Matrix) (*Run, error) {
	if m.Games < 1 {
		m.Games = NumGames
	}
	if m.Turns < 1 {
		m.Turns = game.NumTurns
	}
	if len(m.Columns) == 0 {
		m.Columns = game.DefaultColumns
	}
	if len(m.Columns) < 2 {
		return nil, fmt.Errorf("need at least two columns, got %d", len(m.Columns))
	}

	run := &Run{
		ID:      uuid.NewString(),
		Matrix:  m,
		Summary: NewSummary(),
	}
	rng := rand.New(rand.NewSource(m.Seed))
	pairs := len(m.Conditions1) * len(m.Conditions2)

	log.Info().Msgf("starting %s experiment %s with %d condition pairs...", m.Name, run.ID, pairs)

	pair := 0
	for _, c1 := range m.Conditions1 {
		for _, c2 := range m.Conditions2 {
			pair++
			log.Info().Msgf("starting pair %d of %d: %s vs %s...", pair, pairs, c1, c2)

			for i := 0; i < m.Games; i++ {
				perm := rng.Perm(len(m.Columns))
				v1 := game.Victory{Condition: c1, Column: m.Columns[perm[0]]}
				v2 := game.Victory{Condition: c2, Column: m.Columns[perm[1]]}

				for _, swapped := range []bool{false, true} {
					if err := run.playGame(ctx, v1, v2, swapped); err != nil {
						return nil, err
					}
				}
			}
			log.Info().Msgf("completed pair %d of %d: %s", pair, pairs, run.Summary.Tally(c1, c2))
		}
	}

	log.Info().Msgf("completed %s experiment with %d games", m.Name, len(run.Games))
	return run, nil
}

// playGame seats Agents[0] first unless swapped. Victory v1 always belongs to Agents[0].
func (r *Run) playGame(ctx context.Context, v1, v2 game.Victory, swapped bool) error {
	id := len(r.Games)
	a1, a2 := r.Matrix.Agents[0], r.Matrix.Agents[1]
	victories := [2]game.Victory{v1, v2}
	if swapped {
		a1, a2 = a2, a1
		victories = [2]game.Victory{v2, v1}
	}

	agents := [2]player.Agent{r.newAgent(a1, id), r.newAgent(a2, id)}
	e := engine.LocalEngine(agents, victories, r.Matrix.Columns, engine.WithTurns(r.Matrix.Turns), engine.WithMetrics())
	res, err := e.Run(ctx)
	if err != nil {
		return fmt.Errorf("game %d: %w", id, err)
	}

	r.Games = append(r.Games, metrics.GameRecord{
		ID:         id,
		Agent1:     a1.ID,
		Agent2:     a2.ID,
		GameMetric: res.Game,
	})
	for _, mm := range res.Moves {
		r.Moves = append(r.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}

	winner := res.Winner
	if swapped && winner != 0 {
		winner = 3 - winner
	}
	r.Summary.Add(v1.Condition, v2.Condition, winner)

	log.Debug().Int("game", id).Bool("swapped", swapped).Int("winner", res.Winner).Msg("game over")
	return nil
}

func (r *Run) newAgent(config metrics.AgentConfig, gameID int) player.Agent {
	switch config.Kind {
	case metrics.Random:
		return player.NewRandomPlayer(config.Seed + uint64(gameID))
	case metrics.Strategic:
		return player.NewPlayer(player.WithTurns(r.Matrix.Turns))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

// Persist writes the run as CSV under root and, when store is set, into the results database.
func Persist(ctx context.Context, run *Run, root string, store *metrics.Store) (string, error) {
	writer, err := metrics.NewWriter(root, run.Matrix.Name, run.ID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(run.Matrix.Agents[:]); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(run.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(run.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if store != nil {
		if err := store.SaveGameRecords(ctx, run.ID, run.Matrix.Name, run.Games); err != nil {
			return "", err
		}
		log.Info().Msg("saved game records to database")
	}
	return writer.Dir(), nil
}
