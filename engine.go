package ariasnap

import "sync"

// Engine owns the ref counter a build mints ref ids from (spec §5, §9
// "process-wide lastRef"); the per-element ref cache lives on each
// dom.VElement, not on the Engine. Tests and independent
// callers should use a fresh Engine to get deterministic, collision-free
// refs instead of sharing global state.
type Engine struct {
	mu      sync.Mutex
	lastRef int
}

// NewEngine returns a ready-to-use Engine with its ref counter at zero.
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) nextRef() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastRef++
	return e.lastRef
}
