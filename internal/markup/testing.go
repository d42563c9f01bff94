package markup

import "fmt"

// SequenceTokens is a deterministic TokenGenerator for tests. Each call
// returns q1, q2, q3, ...
type SequenceTokens struct {
	n int
}

func NewSequenceTokens() *SequenceTokens {
	return &SequenceTokens{}
}

func (g *SequenceTokens) New() string {
	g.n++
	return fmt.Sprintf("q%d", g.n)
}
