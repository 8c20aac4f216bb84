package player

import (
	"slices"

	"colduel/game"

	"github.com/rs/zerolog/log"
)

// counterEnemyMix fills every column the strategy left empty with a value that
// spoils the opponent. Spoiling a unique extreme means replaying it so it is no
// longer unique.
//
//	Max/Min:       replay the current unique max/min wherever it sits. On the
//	               last turn a suspected Max/Min column is denied directly and
//	               the remaining columns are flooded with the next free extremes.
//	SumPos/SumNeg: a balanced column gets the positive boundary.
//	Linear, Quadratic, ZeroM: blocked as a side effect of the above.
func (p *Player) counterEnemyMix(state game.State, move game.Move) game.Move {
	currentMax := game.CurrentUniqueMax(state)
	currentMin := game.CurrentUniqueMin(state)

	if p.lastTurn() {
		if col, ok := p.enemy[game.Max]; ok {
			p.denyExtreme(state, move, col, currentMax, -1)
		} else if col, ok := p.enemy[game.Min]; ok {
			p.denyExtreme(state, move, col, currentMin, 1)
		}
	}

	for _, col := range state.Columns() {
		if _, filled := move[col]; filled {
			continue
		}

		if p.turn == 1 || state.Sum(col) == 0 {
			move[col] = game.Boundary
			continue
		}

		switch {
		case !p.lastTurn() && currentMax > 0 && slices.Contains(state[col], currentMax):
			move[col] = currentMax
			p.uniqueMaxCount[col]++
		case !p.lastTurn() && currentMin < 0 && slices.Contains(state[col], currentMin):
			move[col] = currentMin
			p.uniqueMinCount[col]++
		default:
			move[col] = game.Boundary
		}
	}

	for col, value := range move {
		move[col] = game.Round(game.Clamp(value))
	}
	return move
}

// denyExtreme handles a suspected Max (dir -1) or Min (dir 1) opponent on the
// last turn. The opponent's column gets the current unique extreme, or the value
// just inside the next free one when nothing is unique yet. Then the free
// columns are flooded with successive next free extremes, only one of them when
// this player needs the same extreme.
func (p *Player) denyExtreme(state game.State, move game.Move, enemyCol game.Column, current float64, dir int) {
	var next float64
	var exists bool
	if dir < 0 {
		next, exists = game.NextUniqueMax(state), current > 0
	} else {
		next, exists = game.NextUniqueMin(state), current < 0
	}

	if _, filled := move[enemyCol]; !filled {
		if exists {
			move[enemyCol] = current
		} else {
			move[enemyCol] = game.NextAfter(next, dir)
		}
	}

	same := (dir < 0 && p.victory.Condition == game.Max) || (dir > 0 && p.victory.Condition == game.Min)
	for _, col := range state.Columns() {
		if _, filled := move[col]; filled {
			continue
		}
		move[col] = next
		if same {
			break
		}
		next = game.NextAfter(next, dir)
	}

	log.Debug().Msgf("denying suspected extreme in column %s", enemyCol)
}
