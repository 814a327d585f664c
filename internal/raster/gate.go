package raster

import "sync/atomic"

// Gate counts worker completions and elects exactly one caller, the n-th
// arrival, to run the follow-up step. The counter is only reachable through
// Arrive.
type Gate struct {
	n    int64
	done atomic.Int64
}

// NewGate returns a gate expecting n arrivals.
func NewGate(n int) *Gate {
	return &Gate{n: int64(n)}
}

// Arrive records one completion. It reports true for exactly one caller: the
// one whose increment brought the count to n.
func (g *Gate) Arrive() bool {
	return g.done.Add(1) == g.n
}
