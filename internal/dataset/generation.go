package dataset

import "sync/atomic"

// Generation hands out recomputation tokens for a single view. Every
// user-triggered recomputation takes a fresh token, and a result whose token
// is no longer the newest of its own view must be discarded instead of
// applied out of order. Each view owns its own Generation value, so
// recomputations of unrelated views never invalidate each other.
type Generation struct {
	gen atomic.Uint64
}

// Begin starts a new recomputation and returns its token.
func (g *Generation) Begin() uint64 {
	return g.gen.Add(1)
}

// Latest reports whether gen is still the newest issued token.
func (g *Generation) Latest(gen uint64) bool {
	return g.gen.Load() == gen
}
