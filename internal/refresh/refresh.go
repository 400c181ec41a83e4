// Package refresh runs all panel renderers together: once at startup and
// again after every successful mutation, so no panel is ever stale.
package refresh

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Renderer is one independently refreshable panel.
type Renderer interface {
	Name() string
	Render(ctx context.Context) error
}

// Orchestrator triggers all panel renderers. Panels own disjoint endpoints
// and disjoint surface regions, so they refresh concurrently and a failure in
// one never stops the others.
type Orchestrator struct {
	renderers []Renderer
	logger    *zap.Logger
}

// NewOrchestrator wires the orchestrator over the given renderers.
func NewOrchestrator(logger *zap.Logger, renderers ...Renderer) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{renderers: renderers, logger: logger}
}

// RefreshAll renders every panel and waits for all of them. Failures are
// logged per panel and swallowed; each renderer already left its own panel in
// a consistent state.
func (o *Orchestrator) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup

	for _, r := range o.renderers {
		wg.Add(1)
		go func(r Renderer) {
			defer wg.Done()
			if err := r.Render(ctx); err != nil {
				o.logger.Warn("panel refresh failed", zap.String("panel", r.Name()), zap.Error(err))
			}
		}(r)
	}

	wg.Wait()
}
