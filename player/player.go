package player

import (
	"colduel/game"

	"github.com/rs/zerolog/log"
)

const fallbackValue = 1.0 // Played everywhere for an unplayable assignment

type Option func(p *Player)

// WithTurns sets the game length. The last turn and the Max/Min inference
// milestone (one turn before it) follow from it.
func WithTurns(turns int) Option {
	return func(p *Player) {
		if turns > 0 {
			p.turns = turns
		}
	}
}

// Player plays its own victory condition while spoiling the opponent's. A
// Player holds beliefs for exactly one game.
type Player struct {
	turns       int
	turn        int
	firstToMove bool
	orderKnown  bool
	victory     game.Victory

	played         map[game.Column][]float64      // Values this player emitted, by column
	enemy          map[game.Condition]game.Column // Inferred opponent assignments
	uniqueMaxCount map[game.Column]int            // Times a column's unique max was spoiled
	uniqueMinCount map[game.Column]int            // Times a column's unique min was spoiled
}

func NewPlayer(options ...Option) *Player {
	p := &Player{
		turns:          game.NumTurns,
		firstToMove:    true,
		played:         make(map[game.Column][]float64),
		enemy:          make(map[game.Condition]game.Column),
		uniqueMaxCount: make(map[game.Column]int),
		uniqueMinCount: make(map[game.Column]int),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *Player) TakeTurn(state game.State, victory game.Victory) game.Move {
	p.victory = victory
	p.turn = state.TurnNumber()
	if p.turn < 3 || !p.orderKnown {
		p.firstToMove, p.orderKnown = p.checkIsFirst(state)
	}
	p.checkEnemyCol(state)

	move := p.decide(state)
	for col, value := range move {
		p.played[col] = append(p.played[col], value)
	}

	log.Debug().
		Int("turn", p.turn).
		Bool("first", p.firstToMove).
		Stringer("condition", victory.Condition).
		Str("column", string(victory.Column)).
		Interface("move", move).
		Msg("took turn")
	return move
}

func (p *Player) decide(state game.State) game.Move {
	play, ok := strategies[p.victory.Condition]
	if _, known := state[p.victory.Column]; !ok || !known {
		log.Warn().Msgf("cannot play %s in column %q, falling back", p.victory.Condition, p.victory.Column)
		return game.Uniform(state, fallbackValue)
	}

	move := play(p, state)
	return p.counterEnemyMix(state, move)
}

// Suspects returns the column the opponent is believed to target with the condition.
func (p *Player) Suspects(c game.Condition) (game.Column, bool) {
	col, ok := p.enemy[c]
	return col, ok
}

// FirstToMove reports whether this player's values precede the opponent's.
func (p *Player) FirstToMove() bool {
	return p.firstToMove
}

func (p *Player) lastTurn() bool {
	return p.turn >= p.turns
}

// suspect records an inferred opponent assignment once; later evidence never revises it.
func (p *Player) suspect(c game.Condition, col game.Column) {
	if _, ok := p.enemy[c]; ok {
		return
	}
	p.enemy[c] = col
	log.Debug().Int("turn", p.turn).Msgf("suspecting opponent plays %s in column %s", c, col)
}
