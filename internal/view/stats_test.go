package view

import (
	"context"
	"errors"
	"testing"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/internal/view/chart"
)

type countingHandle struct {
	renderer *countingRenderer
}

func (h *countingHandle) Destroy() { h.renderer.live-- }

type countingRenderer struct {
	live    int
	created int
}

func (r *countingRenderer) New(chart.Spec) (chart.Handle, error) {
	r.live++
	r.created++
	return &countingHandle{renderer: r}, nil
}

func sampleStats() *models.DashboardStats {
	return &models.DashboardStats{
		TotalItens: 42,
		Alertas:    3,
		MovHoje:    7,
		Chart: models.ChartData{
			Labels:  []string{"01/03", "02/03"},
			Entrada: []float64{10, 20},
			Saida:   []float64{5, 8},
		},
	}
}

func TestStatsRenderer(t *testing.T) {
	gw := &fakeGateway{stats: sampleStats()}
	surface := NewSurface()
	renderer := &countingRenderer{}
	chartCtx := chart.NewContext(renderer)
	r := NewStatsRenderer(gw, surface, chartCtx, nil)

	if err := r.Render(context.Background()); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	snap := surface.Snapshot()
	if snap.Stats == nil {
		t.Fatal("stats panel not rendered")
	}
	if snap.Stats.TotalItens != 42 || snap.Stats.Alertas != 3 || snap.Stats.MovHoje != 7 {
		t.Errorf("scalar counts not copied verbatim: %+v", snap.Stats)
	}

	if snap.Chart == nil {
		t.Fatal("chart spec not published")
	}
	if snap.Chart.Type != "bar" {
		t.Errorf("expected bar chart, got %q", snap.Chart.Type)
	}
	if len(snap.Chart.Datasets) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(snap.Chart.Datasets))
	}
	if snap.Chart.Datasets[0].Label != "Entrada" || snap.Chart.Datasets[0].BackgroundColor != "#3b82f6" {
		t.Errorf("entrada dataset wrong: %+v", snap.Chart.Datasets[0])
	}
	if snap.Chart.Datasets[1].Label != "Saída" || snap.Chart.Datasets[1].BackgroundColor != "#ef4444" {
		t.Errorf("saida dataset wrong: %+v", snap.Chart.Datasets[1])
	}
}

func TestStatsRenderer_RebuildKeepsSingleChartInstance(t *testing.T) {
	gw := &fakeGateway{stats: sampleStats()}
	surface := NewSurface()
	renderer := &countingRenderer{}
	r := NewStatsRenderer(gw, surface, chart.NewContext(renderer), nil)

	for i := 0; i < 2; i++ {
		if err := r.Render(context.Background()); err != nil {
			t.Fatalf("render %d failed: %v", i, err)
		}
	}

	if renderer.created != 2 {
		t.Errorf("expected 2 chart instances created, got %d", renderer.created)
	}
	if renderer.live != 1 {
		t.Errorf("expected exactly 1 live chart instance, got %d", renderer.live)
	}
}

func TestStatsRenderer_FetchFailureLeavesPanelUnchanged(t *testing.T) {
	gw := &fakeGateway{statsErr: errors.New("connection refused")}
	surface := NewSurface()
	r := NewStatsRenderer(gw, surface, chart.NewContext(&countingRenderer{}), nil)

	if err := r.Render(context.Background()); err == nil {
		t.Fatal("expected render error")
	}
	if snap := surface.Snapshot(); snap.Stats != nil || snap.Chart != nil {
		t.Error("failed fetch must not touch the panel")
	}
}
