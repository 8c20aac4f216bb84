package engine

import (
	"context"
	"time"

	"colduel/experiments/metrics"
	"colduel/game"
	"colduel/player"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalMatch)

// WithMetrics times every move decision.
func WithMetrics() Option {
	return func(e *LocalMatch) {
		e.collector = metrics.NewCollector()
	}
}

func WithTurns(turns int) Option {
	if turns < 1 {
		panic("need at least one turn")
	}
	return func(e *LocalMatch) {
		e.turns = turns
	}
}

type LocalMatch struct {
	State     game.State
	Agents    [2]player.Agent
	Victories [2]game.Victory

	turns     int
	collector metrics.Collector
}

func LocalEngine(agents [2]player.Agent, victories [2]game.Victory, columns []game.Column, options ...Option) *LocalMatch {
	for i, agent := range agents {
		if agent == nil {
			panic("missing agent for player " + string(rune('1'+i)))
		}
	}

	state := game.NewState(columns...)
	for _, v := range victories {
		if _, ok := state[v.Column]; !ok {
			panic("victory column " + string(v.Column) + " is not on the board")
		}
	}

	e := &LocalMatch{
		State:     state,
		Agents:    agents,
		Victories: victories,
		turns:     game.NumTurns,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays every turn: both agents decide on the same snapshot, then the
// first mover's value is appended before the second mover's.
func (e *LocalMatch) Run(ctx context.Context) (Result, error) {
	log.Info().Msgf("starting match %s on %s vs %s on %s",
		e.Victories[0].Condition, e.Victories[0].Column, e.Victories[1].Condition, e.Victories[1].Column)

	start := time.Now()
	var moveMetrics []metrics.MoveMetric
	for turn := 1; turn <= e.turns; turn++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		var moves [2]game.Move
		for i, agent := range e.Agents {
			e.collector.Start()
			move := agent.TakeTurn(e.State.Copy(), e.Victories[i])
			legal, sanitized := e.legalize(move, turn, i+1)
			moves[i] = legal
			moveMetrics = append(moveMetrics, e.collector.Complete(turn, i+1, sanitized))
		}

		e.State.Apply(moves[0])
		e.State.Apply(moves[1])
	}
	end := time.Now()

	winner := game.Outcome(e.State, e.Victories[0], e.Victories[1])
	result := Result{
		Winner: winner,
		Wins:   [2]bool{game.Satisfied(e.State, e.Victories[0]), game.Satisfied(e.State, e.Victories[1])},
		State:  e.State,
		Hash:   e.State.Hash(),
		Game: metrics.GameMetric{
			Victory1:   e.Victories[0],
			Victory2:   e.Victories[1],
			Winner:     winner,
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(moveMetrics),
		},
		Moves: moveMetrics,
	}
	result.Game.Hash = result.Hash

	log.Info().Msgf("match over after %d turns, winner: %d", e.turns, winner)
	return result, nil
}

func (e *LocalMatch) legalize(move game.Move, turn, seat int) (game.Move, bool) {
	err := move.Validate(e.State)
	if err == nil {
		legal := move.Sanitize(e.State)
		for col, v := range move {
			if legal[col] != v {
				return legal, true
			}
		}
		return move, false
	}
	log.Warn().Err(err).Int("turn", turn).Int("player", seat).Msg("sanitizing illegal move")
	return move.Sanitize(e.State), true
}
