package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"colduel/communication"
	"colduel/experiments/metrics"
	"colduel/game"

	"github.com/rs/zerolog/log"
)

// RemoteMatch has a remote judge play two programs against each other.
type RemoteMatch struct {
	Judge     communication.Judge
	Request   communication.Request
	Victories [2]game.Victory
}

func RemoteEngine(judge communication.Judge, syndicate int, name, program, opponent string, victories [2]game.Victory) *RemoteMatch {
	if judge == nil {
		panic("missing judge")
	}

	return &RemoteMatch{
		Judge: judge,
		Request: communication.Request{
			Cmd:       "TEST",
			Syndicate: syndicate,
			Name:      name,
			Program:   program,
			Opponent:  opponent,
			Victory1:  victories[0].Condition.String(),
			Victory2:  victories[1].Condition.String(),
		},
		Victories: victories,
	}
}

// Run submits the match and reports the judge's result. Winner is only set
// when the judge answers with a seat number.
func (e *RemoteMatch) Run(ctx context.Context) (Result, error) {
	log.Info().Msgf("submitting %s vs %s to the judge", e.Request.Victory1, e.Request.Victory2)

	res, err := e.Judge.Submit(ctx, e.Request)
	if err != nil {
		return Result{}, fmt.Errorf("remote match %s vs %s: %w", e.Request.Victory1, e.Request.Victory2, err)
	}

	result := Result{
		Judge: string(res.Result),
		Game: metrics.GameMetric{
			Victory1: e.Victories[0],
			Victory2: e.Victories[1],
		},
	}
	var seat int
	if err := json.Unmarshal(res.Result, &seat); err == nil && seat >= 0 && seat <= 2 {
		result.Winner = seat
		result.Game.Winner = seat
	}

	log.Info().Msgf("judge result for %s vs %s: %s", e.Request.Victory1, e.Request.Victory2, result.Judge)
	return result, nil
}
