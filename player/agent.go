package player

import "colduel/game"

type Agent interface {
	// TakeTurn returns this agent's values for every column of the state. The
	// state is a read-only snapshot and the victory is the same for a whole game.
	TakeTurn(state game.State, victory game.Victory) game.Move
}
