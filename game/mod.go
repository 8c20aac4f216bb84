package game

const (
	Boundary  = 1023.0  // Largest magnitude a played value may have
	Epsilon   = 0.00001 // Smallest step at the game's precision
	Precision = 5       // Decimal places every played value is rounded to
	NumTurns  = 10      // Turns per game
)

// Column identifies one slot of the shared game state.
type Column string

var DefaultColumns = []Column{"A", "B", "C", "D", "E"}

// Victory is the hidden (condition, column) pair assigned to a player for one game.
type Victory struct {
	Condition Condition `json:"condition"`
	Column    Column    `json:"column"`
}

type StateHash uint64
