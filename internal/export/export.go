// Package export streams report files built from fresh backend data.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
)

// Exporter pulls the current datasets through the gateway and writes them out
// as CSV.
type Exporter struct {
	gw     inventory.Gateway
	logger *zap.Logger
}

// NewExporter wires the report exporter.
func NewExporter(gw inventory.Gateway, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{gw: gw, logger: logger}
}

// WriteStockCSV writes the full stock list with the same BAIXO/OK status the
// panel shows.
func (e *Exporter) WriteStockCSV(ctx context.Context, w io.Writer) error {
	rows, err := e.gw.FetchStock(ctx)
	if err != nil {
		return fmt.Errorf("load stock for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Código", "Descrição", "Unidade", "Mínimo", "Saldo", "Situação"}); err != nil {
		return fmt.Errorf("write stock header: %w", err)
	}

	for _, row := range rows {
		situacao := models.SituacaoOK
		if row.AlertaBaixo {
			situacao = models.SituacaoBaixo
		}
		record := []string{
			row.Cod,
			row.Descricao,
			row.Unid,
			formatNumber(row.EstoqueMinimo),
			formatNumber(row.Saldo),
			situacao,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write stock row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMovementsCSV writes the movement history, entries and exits combined,
// tagged by direction.
func (e *Exporter) WriteMovementsCSV(ctx context.Context, w io.Writer) error {
	movs, err := e.gw.FetchMovements(ctx)
	if err != nil {
		return fmt.Errorf("load movements for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Tipo", "Data", "Código", "Quantidade"}); err != nil {
		return fmt.Errorf("write movements header: %w", err)
	}

	write := func(tipo string, rows []models.Movement) error {
		for _, m := range rows {
			record := []string{tipo, m.Data, m.Cod, formatNumber(m.Quantidade)}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write movement row: %w", err)
			}
		}
		return nil
	}

	if err := write("Entrada", movs.Entradas); err != nil {
		return err
	}
	if err := write("Saída", movs.Saidas); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
