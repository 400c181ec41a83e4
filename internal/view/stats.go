package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/internal/view/chart"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
)

// Fixed series colors, kept stable across refreshes so the chart reads the
// same after every reload.
const (
	entradaColor = "#3b82f6"
	saidaColor   = "#ef4444"
)

// StatsRenderer renders the summary cards and rebuilds the movement chart.
type StatsRenderer struct {
	gw      inventory.Gateway
	surface *Surface
	chart   *chart.Context
	logger  *zap.Logger
}

// NewStatsRenderer wires the summary panel renderer.
func NewStatsRenderer(gw inventory.Gateway, surface *Surface, chartCtx *chart.Context, logger *zap.Logger) *StatsRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsRenderer{gw: gw, surface: surface, chart: chartCtx, logger: logger}
}

// Name identifies the panel in orchestrator logs.
func (r *StatsRenderer) Name() string { return "stats" }

// Render fetches fresh statistics and replaces the cards and the chart. On
// fetch failure the panel is left unchanged.
func (r *StatsRenderer) Render(ctx context.Context) error {
	stats, err := r.gw.FetchStats(ctx)
	if err != nil {
		r.logger.Error("stats fetch failed, panel unchanged", zap.Error(err))
		return err
	}

	spec := chart.Spec{
		Type:   "bar",
		Labels: stats.Chart.Labels,
		Datasets: []chart.Dataset{
			{Label: "Entrada", Data: stats.Chart.Entrada, BackgroundColor: entradaColor},
			{Label: "Saída", Data: stats.Chart.Saida, BackgroundColor: saidaColor},
		},
	}

	if err := r.chart.Replace(spec); err != nil {
		r.logger.Error("chart rebuild failed", zap.Error(err))
		return err
	}

	r.surface.SetStats(models.StatsPanel{
		TotalItens: stats.TotalItens,
		Alertas:    stats.Alertas,
		MovHoje:    stats.MovHoje,
	}, spec)

	return nil
}
