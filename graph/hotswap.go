package graph

import (
	"sync"

	"github.com/treeline-io/treeline/api"
	"github.com/treeline-io/treeline/internal/logutil"
	"github.com/treeline-io/treeline/vars"
)

// Handle publishes compiled schemas to concurrent readers. A schema is
// built fully before Swap installs it, so every delegated call observes
// one complete, consistent snapshot; in-flight calls against the prior
// schema finish against that prior schema.
type Handle struct {
	mu      sync.RWMutex
	current *Schema
	gen     uint64
}

// NewHandle wraps an initial compiled schema.
func NewHandle(initial *Schema) *Handle {
	return &Handle{current: initial, gen: 1}
}

// Swap atomically replaces the published schema and returns the previous
// one. The old schema stays valid for readers still holding it.
func (h *Handle) Swap(next *Schema) *Schema {
	h.mu.Lock()
	prev := h.current
	h.current = next
	h.gen++
	gen := h.gen
	h.mu.Unlock()
	lg := logutil.Logger("graph")
	lg.Debug().Uint64("generation", gen).Msg("schema snapshot swapped")
	return prev
}

// Current returns the published schema snapshot.
func (h *Handle) Current() *Schema {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Generation returns how many snapshots have been published, starting at
// 1 for the initial schema.
func (h *Handle) Generation() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.gen
}

// Resolve delegates to the current snapshot.
func (h *Handle) Resolve(nodeID string, ctx *vars.Context, loc api.Location, plat api.Platform) (*ResolvedPath, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.Resolve(nodeID, ctx, loc, plat)
}

// Extract delegates to the current snapshot.
func (h *Handle) Extract(path string, loc api.Location, plat api.Platform) (Node, *vars.Context, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.Extract(path, loc, plat)
}

// RequiredVariables delegates to the current snapshot.
func (h *Handle) RequiredVariables(nodeID string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.RequiredVariables(nodeID)
}

// NodeByID delegates to the current snapshot.
func (h *Handle) NodeByID(id string) (Node, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.NodeByID(id)
}
