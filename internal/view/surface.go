// Package view contains the four panel renderers and the surface they render
// into. Each renderer is idempotent: it fetches a fresh payload, derives the
// display state and replaces its panel wholesale, so stale rows never survive
// a refresh.
package view

import (
	"sync"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/internal/view/chart"
)

// Surface holds the currently rendered state of every panel. It is the
// process-local stand-in for the page: renderers replace whole panels, the
// HTTP layer snapshots it for the browser.
type Surface struct {
	mu        sync.RWMutex
	stats     *models.StatsPanel
	chartSpec *chart.Spec
	stock     *models.StockPanel
	history   *models.HistoryPanel
	users     *models.UsersPanel
}

// NewSurface returns an empty surface; panels are nil until first rendered.
func NewSurface() *Surface {
	return &Surface{}
}

// Snapshot is a point-in-time copy of all rendered panels.
type Snapshot struct {
	Stats     *models.StatsPanel   `json:"stats"`
	Chart     *chart.Spec          `json:"chart,omitempty"`
	Estoque   *models.StockPanel   `json:"estoque"`
	Historico *models.HistoryPanel `json:"historico"`
	Usuarios  *models.UsersPanel   `json:"usuarios,omitempty"`
}

// Snapshot returns the current state of all panels.
func (s *Surface) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Stats:     s.stats,
		Chart:     s.chartSpec,
		Estoque:   s.stock,
		Historico: s.history,
		Usuarios:  s.users,
	}
}

// SetStats replaces the summary cards and the published chart spec.
func (s *Surface) SetStats(panel models.StatsPanel, spec chart.Spec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = &panel
	s.chartSpec = &spec
}

// SetStock replaces the stock table panel.
func (s *Surface) SetStock(panel models.StockPanel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock = &panel
}

// Stock returns the currently rendered stock panel, if any.
func (s *Surface) Stock() *models.StockPanel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stock
}

// SetHistory replaces the movement history panel.
func (s *Surface) SetHistory(panel models.HistoryPanel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = &panel
}

// SetUsers replaces the user table panel.
func (s *Surface) SetUsers(panel models.UsersPanel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = &panel
}

// Users returns the currently rendered user panel, if any.
func (s *Surface) Users() *models.UsersPanel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users
}
