package view

import (
	"context"
	"errors"
	"testing"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
)

func sampleStock() []models.StockRow {
	return []models.StockRow{
		{Cod: "PAR-01", Descricao: "Parafuso sextavado", Unid: "UN", EstoqueMinimo: 50, Saldo: 20, AlertaBaixo: true},
		{Cod: "TIN-02", Descricao: "Tinta acrílica", Unid: "L", EstoqueMinimo: 10, Saldo: 35},
		{Cod: "CAB-03", Descricao: "Cabo flexível", Unid: "M", EstoqueMinimo: 100, Saldo: 250},
	}
}

func TestFilterRows(t *testing.T) {
	rows := sampleStock()

	tests := []struct {
		name     string
		term     string
		wantCods []string
	}{
		{name: "empty term keeps all rows in order", term: "", wantCods: []string{"PAR-01", "TIN-02", "CAB-03"}},
		{name: "matches description case-insensitively", term: "TINTA", wantCods: []string{"TIN-02"}},
		{name: "matches code case-insensitively", term: "par-", wantCods: []string{"PAR-01"}},
		{name: "substring in the middle", term: "flex", wantCods: []string{"CAB-03"}},
		{name: "no match yields empty", term: "inexistente", wantCods: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterRows(rows, tt.term)
			if len(got) != len(tt.wantCods) {
				t.Fatalf("expected %d rows, got %d", len(tt.wantCods), len(got))
			}
			for i, cod := range tt.wantCods {
				if got[i].Cod != cod {
					t.Errorf("row %d: expected cod %q, got %q", i, cod, got[i].Cod)
				}
			}
		})
	}
}

func TestStockRenderer_Badges(t *testing.T) {
	gw := &fakeGateway{stock: sampleStock()}
	surface := NewSurface()
	r := NewStockRenderer(gw, surface, nil)

	if err := r.Render(context.Background()); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	panel := surface.Stock()
	if panel == nil {
		t.Fatal("stock panel not rendered")
	}
	if len(panel.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(panel.Rows))
	}

	if got := panel.Rows[0].Situacao; got != models.SituacaoBaixo {
		t.Errorf("low-stock row: expected badge %q, got %q", models.SituacaoBaixo, got)
	}
	if !panel.Rows[0].Baixo {
		t.Error("low-stock row: expected Baixo true")
	}
	if got := panel.Rows[1].Situacao; got != models.SituacaoOK {
		t.Errorf("healthy row: expected badge %q, got %q", models.SituacaoOK, got)
	}
}

func TestStockRenderer_TermAppliedOnRender(t *testing.T) {
	gw := &fakeGateway{stock: sampleStock()}
	surface := NewSurface()
	r := NewStockRenderer(gw, surface, nil)

	r.SetTerm("cabo")
	if err := r.Render(context.Background()); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	panel := surface.Stock()
	if panel.Termo != "cabo" {
		t.Errorf("expected panel termo %q, got %q", "cabo", panel.Termo)
	}
	if len(panel.Rows) != 1 || panel.Rows[0].Cod != "CAB-03" {
		t.Fatalf("expected only CAB-03, got %+v", panel.Rows)
	}
}

func TestStockRenderer_FetchFailureLeavesPanelUnchanged(t *testing.T) {
	gw := &fakeGateway{stock: sampleStock()}
	surface := NewSurface()
	r := NewStockRenderer(gw, surface, nil)

	if err := r.Render(context.Background()); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	gw.stockErr = errors.New("backend down")
	if err := r.Render(context.Background()); err == nil {
		t.Fatal("expected render error")
	}

	panel := surface.Stock()
	if panel == nil || len(panel.Rows) != 3 {
		t.Fatalf("expected previous panel preserved, got %+v", panel)
	}
}
