package player

import (
	"math"
	"slices"

	"colduel/game"
)

const (
	zeroSumTolerance = 0.000001 // Per entry, below which a ZeroM column counts as balanced
	disguiseTurns    = 3        // SumPos/SumNeg stay just off the boundary this long
	donations        = 2        // Other columns that receive the spoiling extreme on the last turn
)

// strategy fills the victory column of a fresh move. Counter-fill runs afterwards.
type strategy func(p *Player, state game.State) game.Move

var strategies = map[game.Condition]strategy{
	game.Max:       (*Player).maxStrategy,
	game.Min:       (*Player).minStrategy,
	game.Linear:    (*Player).concedeStrategy,
	game.Quadratic: (*Player).concedeStrategy,
	game.ZeroM:     (*Player).zeroMStrategy,
	game.SumPos:    (*Player).sumPosStrategy,
	game.SumNeg:    (*Player).sumNegStrategy,
}

// creep returns the boundary moved inwards by one epsilon per elapsed turn.
func (p *Player) creep(dir int) float64 {
	return game.Round(float64(-dir)*game.Boundary + float64(dir*(p.turn-1))*game.Epsilon)
}

func (p *Player) maxStrategy(state game.State) game.Move {
	col := p.victory.Column
	move := game.Move{col: p.creep(-1)}
	if !p.lastTurn() {
		return move
	}

	// Take the highest free value under the next free max, then spend that next
	// max in other columns so it cannot stay unique.
	next := game.NextUniqueMax(state)
	move[col] = game.NextUnplayedBelow(state, next)

	sumNeg, suspected := p.enemy[game.SumNeg]
	p.donate(move, next, donations, func(k game.Column, last float64) bool {
		return last > 0 && !(suspected && k == sumNeg)
	})
	return move
}

func (p *Player) minStrategy(state game.State) game.Move {
	col := p.victory.Column
	move := game.Move{col: p.creep(1)}
	if !p.lastTurn() {
		return move
	}

	next := game.NextUniqueMin(state)
	move[col] = game.NextUnplayedAbove(state, next)

	sumPos, suspected := p.enemy[game.SumPos]
	p.donate(move, next, donations, func(k game.Column, last float64) bool {
		return last < 0 && !(suspected && k == sumPos)
	})
	return move
}

// donate plays value in exactly limit other columns whose last own value passes
// accept, or nowhere when too few qualify. A single copy would be unique itself.
func (p *Player) donate(move game.Move, value float64, limit int, accept func(game.Column, float64) bool) {
	var targets []game.Column
	for _, k := range sortedKeys(p.played) {
		history := p.played[k]
		if k == p.victory.Column || len(history) == 0 {
			continue
		}
		if accept(k, history[len(history)-1]) {
			targets = append(targets, k)
		}
	}
	if len(targets) < limit {
		return
	}
	for _, k := range targets[:limit] {
		move[k] = value
	}
}

func (p *Player) zeroMStrategy(state game.State) game.Move {
	col := p.victory.Column
	sum := state.Sum(col)

	var value float64
	if math.Abs(sum) <= zeroSumTolerance*float64(len(state[col])) {
		// Never a literal zero, and never away from zero
		value = game.Epsilon
		if sum > 0 {
			value = -game.Epsilon
		}
	} else {
		value = game.Clamp(-sum)
	}

	if p.lastTurn() {
		if guess, ok := p.predictOpponent(state, col); ok {
			value = game.Clamp(-sum - guess)
		}
	}
	return game.Move{col: value}
}

// predictOpponent guesses the opponent's last value in col: the next free
// extreme if it is suspected to play Max or Min there, else its most frequent value.
func (p *Player) predictOpponent(state game.State, col game.Column) (float64, bool) {
	if c, ok := p.enemy[game.Max]; ok && c == col {
		return game.NextUniqueMax(state), true
	}
	if c, ok := p.enemy[game.Min]; ok && c == col {
		return game.NextUniqueMin(state), true
	}
	return mode(p.opponentValues(state, col))
}

// concedeStrategy crowds a trend column with the boundary. Trend conditions are
// not realistically winnable against a player sharing the column.
func (p *Player) concedeStrategy(state game.State) game.Move {
	return game.Move{p.victory.Column: game.Boundary}
}

func (p *Player) sumPosStrategy(state game.State) game.Move {
	return p.sumStrategy(state, 1)
}

func (p *Player) sumNegStrategy(state game.State) game.Move {
	return p.sumStrategy(state, -1)
}

// sumStrategy pushes the column sum towards sign dir, keeping slightly off the
// boundary early on unless the sign is already secured.
func (p *Player) sumStrategy(state game.State, dir int) game.Move {
	col := p.victory.Column
	boundary := float64(dir) * game.Boundary

	value := boundary
	if state.Sum(col)*float64(dir) <= 0 && p.turn <= disguiseTurns {
		value = p.creep(-dir)
	}
	return game.Move{col: value}
}

// mode returns the most frequent value, the smallest one on ties.
func mode(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	best, bestCount := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > bestCount {
			best, bestCount = sorted[i], j-i
		}
		i = j
	}
	return best, true
}

func sortedKeys[V any](m map[game.Column]V) []game.Column {
	keys := make([]game.Column, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
