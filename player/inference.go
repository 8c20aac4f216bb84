package player

import (
	"colduel/game"
)

const (
	sumCheckTurn       = 3 // Turn by which the opponent's sum pattern has shown
	minExtremeEvidence = 2 // Spoiled unique extremes needed to suspect Max/Min
)

// checkEnemyCol folds this turn's evidence into the opponent beliefs. Each check
// runs on one specific turn, once enough values exist.
func (p *Player) checkEnemyCol(state game.State) {
	if p.turn == sumCheckTurn {
		p.checkSums(state)
	}
	if p.turn == p.turns-1 {
		if col, ok := mostSpoiled(p.uniqueMaxCount); ok {
			p.suspect(game.Max, col)
		}
		if col, ok := mostSpoiled(p.uniqueMinCount); ok {
			p.suspect(game.Min, col)
		}
	}
}

// checkSums flags a column where the opponent only ever played one boundary.
func (p *Player) checkSums(state game.State) {
	for _, col := range state.Columns() {
		if col == p.victory.Column {
			continue
		}
		values := p.opponentValues(state, col)
		switch {
		case allEqual(values, game.Boundary):
			p.suspect(game.SumPos, col)
		case allEqual(values, -game.Boundary):
			p.suspect(game.SumNeg, col)
		}
	}
}

// mostSpoiled picks the column with the highest count, the first in order on
// ties, provided the count is strong enough evidence.
func mostSpoiled(counts map[game.Column]int) (game.Column, bool) {
	var best game.Column
	bestCount := 0
	for _, col := range sortedKeys(counts) {
		if counts[col] > bestCount {
			best, bestCount = col, counts[col]
		}
	}
	return best, bestCount >= minExtremeEvidence
}

func allEqual(values []float64, target float64) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v != target {
			return false
		}
	}
	return true
}
