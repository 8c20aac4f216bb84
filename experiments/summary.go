package experiments

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"colduel/game"
)

type Pair struct {
	Condition1 game.Condition // Agents[0]
	Condition2 game.Condition // Agents[1]
}

type Tally struct {
	Wins  [2]int // Indexed like Matrix.Agents
	Draws int
}

func (t Tally) Games() int {
	return t.Wins[0] + t.Wins[1] + t.Draws
}

func (t Tally) String() string {
	return fmt.Sprintf("%d-%d with %d draws", t.Wins[0], t.Wins[1], t.Draws)
}

// Summary tabulates results per condition pair, from the first agent's point of view.
type Summary struct {
	tallies map[Pair]*Tally
}

func NewSummary() *Summary {
	return &Summary{tallies: map[Pair]*Tally{}}
}

// Add records a game; winner is 1 or 2 for Agents[0] or Agents[1], 0 for a draw.
func (s *Summary) Add(c1, c2 game.Condition, winner int) {
	pair := Pair{c1, c2}
	t, ok := s.tallies[pair]
	if !ok {
		t = &Tally{}
		s.tallies[pair] = t
	}
	switch winner {
	case 1, 2:
		t.Wins[winner-1]++
	default:
		t.Draws++
	}
}

func (s *Summary) Tally(c1, c2 game.Condition) Tally {
	if t, ok := s.tallies[Pair{c1, c2}]; ok {
		return *t
	}
	return Tally{}
}

func (s *Summary) Pairs() []Pair {
	pairs := make([]Pair, 0, len(s.tallies))
	for p := range s.tallies {
		pairs = append(pairs, p)
	}
	slices.SortFunc(pairs, func(a, b Pair) int {
		if a.Condition1 != b.Condition1 {
			return int(a.Condition1) - int(b.Condition1)
		}
		return int(a.Condition2) - int(b.Condition2)
	})
	return pairs
}

func (s *Summary) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONDITION1\tCONDITION2\tWINS1\tWINS2\tDRAWS")
	for _, p := range s.Pairs() {
		t := s.tallies[p]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", p.Condition1, p.Condition2, t.Wins[0], t.Wins[1], t.Draws)
	}
	return tw.Flush()
}
