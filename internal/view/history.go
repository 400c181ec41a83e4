package view

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
)

// HistoryRenderer renders the two movement history tables.
type HistoryRenderer struct {
	gw      inventory.Gateway
	surface *Surface
	logger  *zap.Logger
}

// NewHistoryRenderer wires the movement history renderer.
func NewHistoryRenderer(gw inventory.Gateway, surface *Surface, logger *zap.Logger) *HistoryRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryRenderer{gw: gw, surface: surface, logger: logger}
}

// Name identifies the panel in orchestrator logs.
func (r *HistoryRenderer) Name() string { return "historico" }

// Render fetches the movement history and replaces the panel.
func (r *HistoryRenderer) Render(ctx context.Context) error {
	movs, err := r.gw.FetchMovements(ctx)
	if err != nil {
		r.logger.Error("movements fetch failed, panel unchanged", zap.Error(err))
		return err
	}

	r.surface.SetHistory(models.HistoryPanel{
		Entradas: movementViews(movs.Entradas, true),
		Saidas:   movementViews(movs.Saidas, false),
	})
	return nil
}

func movementViews(movs []models.Movement, entrada bool) []models.MovementView {
	views := make([]models.MovementView, 0, len(movs))
	for _, m := range movs {
		views = append(views, models.MovementView{
			Data:       shortDate(m.Data),
			Cod:        m.Cod,
			Quantidade: m.Quantidade,
			Entrada:    entrada,
		})
	}
	return views
}

// shortDate turns an ISO YYYY-MM-DD date into DD/MM, dropping the year.
// Malformed input is shown as-is.
func shortDate(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) < 3 {
		return iso
	}
	return parts[2] + "/" + parts[1]
}
