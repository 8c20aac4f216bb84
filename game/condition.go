package game

import "fmt"

// Condition represents a victory condition a player must satisfy in its column.
type Condition int

const (
	Unknown Condition = iota
	Max
	Min
	Linear
	Quadratic
	ZeroM
	SumPos
	SumNeg
)

var Conditions = []Condition{Max, Min, Linear, Quadratic, ZeroM, SumPos, SumNeg}

var conditionNames = map[Condition]string{
	Unknown:   "Unknown",
	Max:       "Max",
	Min:       "Min",
	Linear:    "Linear",
	Quadratic: "Quadratic",
	ZeroM:     "ZeroM",
	SumPos:    "SumPos",
	SumNeg:    "SumNeg",
}

func (c Condition) String() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Condition(%d)", int(c))
}

// ParseCondition maps a judge condition name to its Condition.
func ParseCondition(name string) (Condition, error) {
	for c, n := range conditionNames {
		if c != Unknown && n == name {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("unknown victory condition %q", name)
}

func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Condition) UnmarshalText(text []byte) error {
	parsed, err := ParseCondition(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
