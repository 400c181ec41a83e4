package view

import (
	"context"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
)

// fakeGateway is an in-memory Gateway used by the renderer tests.
type fakeGateway struct {
	stats *models.DashboardStats
	stock []models.StockRow
	movs  *models.Movements
	users []models.User

	statsErr error
	stockErr error
	movsErr  error
	usersErr error

	fetchUsersCalls int
}

func (f *fakeGateway) FetchStats(context.Context) (*models.DashboardStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeGateway) FetchStock(context.Context) ([]models.StockRow, error) {
	return f.stock, f.stockErr
}

func (f *fakeGateway) FetchMovements(context.Context) (*models.Movements, error) {
	return f.movs, f.movsErr
}

func (f *fakeGateway) FetchUsers(context.Context) ([]models.User, error) {
	f.fetchUsersCalls++
	return f.users, f.usersErr
}

func (f *fakeGateway) Submit(context.Context, string, map[string]string) error { return nil }

func (f *fakeGateway) CreateUser(context.Context, models.CreateUserRequest) error { return nil }

func (f *fakeGateway) DeleteUser(context.Context, int) error { return nil }
