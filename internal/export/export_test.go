package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
)

type fakeGateway struct {
	stock    []models.StockRow
	stockErr error
	movs     *models.Movements
}

func (f *fakeGateway) FetchStats(context.Context) (*models.DashboardStats, error) { return nil, nil }

func (f *fakeGateway) FetchStock(context.Context) ([]models.StockRow, error) {
	return f.stock, f.stockErr
}

func (f *fakeGateway) FetchMovements(context.Context) (*models.Movements, error) {
	return f.movs, nil
}

func (f *fakeGateway) FetchUsers(context.Context) ([]models.User, error)          { return nil, nil }
func (f *fakeGateway) Submit(context.Context, string, map[string]string) error    { return nil }
func (f *fakeGateway) CreateUser(context.Context, models.CreateUserRequest) error { return nil }
func (f *fakeGateway) DeleteUser(context.Context, int) error                      { return nil }

func TestWriteStockCSV(t *testing.T) {
	gw := &fakeGateway{stock: []models.StockRow{
		{Cod: "PAR-01", Descricao: "Parafuso", Unid: "UN", EstoqueMinimo: 50, Saldo: 20, AlertaBaixo: true},
		{Cod: "TIN-02", Descricao: "Tinta", Unid: "L", EstoqueMinimo: 10, Saldo: 35.5},
	}}
	e := NewExporter(gw, nil)

	var buf bytes.Buffer
	if err := e.WriteStockCSV(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv produced: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[1][5] != models.SituacaoBaixo {
		t.Errorf("low-stock row: expected %q, got %q", models.SituacaoBaixo, records[1][5])
	}
	if records[2][5] != models.SituacaoOK {
		t.Errorf("healthy row: expected %q, got %q", models.SituacaoOK, records[2][5])
	}
	if records[2][4] != "35.5" {
		t.Errorf("expected saldo 35.5, got %q", records[2][4])
	}
}

func TestWriteMovementsCSV(t *testing.T) {
	gw := &fakeGateway{movs: &models.Movements{
		Entradas: []models.Movement{{Data: "2024-03-07", Cod: "PAR-01", Quantidade: 100}},
		Saidas:   []models.Movement{{Data: "2024-03-08", Cod: "TIN-02", Quantidade: 5}},
	}}
	e := NewExporter(gw, nil)

	var buf bytes.Buffer
	if err := e.WriteMovementsCSV(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv produced: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[1][0] != "Entrada" || records[2][0] != "Saída" {
		t.Errorf("direction tags wrong: %q, %q", records[1][0], records[2][0])
	}
}

func TestWriteStockCSV_FetchFailure(t *testing.T) {
	gw := &fakeGateway{stockErr: errors.New("backend down")}
	e := NewExporter(gw, nil)

	var buf bytes.Buffer
	if err := e.WriteStockCSV(context.Background(), &buf); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Error("failed export must not write partial output")
	}
}
