package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/export"
)

// ExportHandler streams CSV reports assembled from fresh backend data.
type ExportHandler struct {
	exporter *export.Exporter
	logger   *zap.Logger
}

// NewExportHandler constructs the export HTTP adapter.
func NewExportHandler(exporter *export.Exporter, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{exporter: exporter, logger: logger}
}

// Stock serves the stock list as a CSV download.
func (h *ExportHandler) Stock(c *gin.Context) {
	filename := fmt.Sprintf("estoque_%s.csv", time.Now().Format("02-01-2006"))
	setCSVHeaders(c, filename)

	if err := h.exporter.WriteStockCSV(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("stock export failed", zap.Error(err))
		c.Status(http.StatusBadGateway)
	}
}

// Movements serves the movement history as a CSV download.
func (h *ExportHandler) Movements(c *gin.Context) {
	filename := fmt.Sprintf("movimentacoes_%s.csv", time.Now().Format("02-01-2006"))
	setCSVHeaders(c, filename)

	if err := h.exporter.WriteMovementsCSV(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("movements export failed", zap.Error(err))
		c.Status(http.StatusBadGateway)
	}
}

func setCSVHeaders(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
