package player

import (
	"colduel/game"

	"golang.org/x/exp/rand"
)

// RandomPlayer plays uniformly random values and ignores its victory condition.
// It is a sparring partner for experiments.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomPlayer) TakeTurn(state game.State, victory game.Victory) game.Move {
	move := make(game.Move, len(state))
	for _, col := range state.Columns() {
		move[col] = game.Round((r.rng.Float64()*2 - 1) * game.Boundary)
	}
	return move
}
