package cli

import "sync"

// latestGuard drops results of superseded requests. Each kind of request
// gets a sequence; a result is applied only if no newer request of the
// same kind has started since.
type latestGuard struct {
	mu  sync.Mutex
	seq map[string]uint64
}

func (g *latestGuard) begin(kind string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seq == nil {
		g.seq = make(map[string]uint64)
	}
	g.seq[kind]++
	return g.seq[kind]
}

// apply runs fn if id is still the latest request of kind and reports
// whether it did.
func (g *latestGuard) apply(kind string, id uint64, fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seq[kind] != id {
		return false
	}
	fn()
	return true
}
