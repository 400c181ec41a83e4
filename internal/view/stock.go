package view

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
)

// StockRenderer renders the stock table, filtered by the current search term.
// The term belongs to the renderer, not the fetch: every render re-fetches
// the full list and filters it, mirroring search-as-you-type.
type StockRenderer struct {
	gw      inventory.Gateway
	surface *Surface
	logger  *zap.Logger

	mu   sync.Mutex
	term string
}

// NewStockRenderer wires the stock table renderer.
func NewStockRenderer(gw inventory.Gateway, surface *Surface, logger *zap.Logger) *StockRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockRenderer{gw: gw, surface: surface, logger: logger}
}

// Name identifies the panel in orchestrator logs.
func (r *StockRenderer) Name() string { return "estoque" }

// SetTerm updates the active search term. Callers re-render afterwards.
func (r *StockRenderer) SetTerm(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.term = term
}

// Term returns the active search term.
func (r *StockRenderer) Term() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.term
}

// Render fetches the full stock list, applies the search filter and replaces
// the panel.
func (r *StockRenderer) Render(ctx context.Context) error {
	rows, err := r.gw.FetchStock(ctx)
	if err != nil {
		r.logger.Error("stock fetch failed, panel unchanged", zap.Error(err))
		return err
	}

	term := r.Term()
	views := make([]models.StockRowView, 0, len(rows))
	for _, row := range filterRows(rows, term) {
		views = append(views, stockRowView(row))
	}

	r.surface.SetStock(models.StockPanel{Termo: term, Rows: views})
	return nil
}

// filterRows keeps the rows whose code or description contains term,
// case-insensitively. An empty term keeps every row, order preserved.
func filterRows(rows []models.StockRow, term string) []models.StockRow {
	needle := strings.ToLower(term)
	if needle == "" {
		return rows
	}

	filtered := make([]models.StockRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Descricao), needle) ||
			strings.Contains(strings.ToLower(row.Cod), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func stockRowView(row models.StockRow) models.StockRowView {
	situacao := models.SituacaoOK
	if row.AlertaBaixo {
		situacao = models.SituacaoBaixo
	}

	return models.StockRowView{
		Cod:           row.Cod,
		Descricao:     row.Descricao,
		Unid:          row.Unid,
		EstoqueMinimo: row.EstoqueMinimo,
		Saldo:         row.Saldo,
		Baixo:         row.AlertaBaixo,
		Situacao:      situacao,
	}
}
