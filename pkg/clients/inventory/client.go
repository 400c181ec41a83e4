package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/rlopes-dev/estoque-painel/internal/config"
	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
)

// Gateway exposes the inventory backend operations used by the application.
// Reads return fresh payloads on every call; there is no caching and no retry.
type Gateway interface {
	FetchStats(ctx context.Context) (*models.DashboardStats, error)
	FetchStock(ctx context.Context) ([]models.StockRow, error)
	FetchMovements(ctx context.Context) (*models.Movements, error)
	FetchUsers(ctx context.Context) ([]models.User, error)

	Submit(ctx context.Context, path string, body map[string]string) error
	CreateUser(ctx context.Context, req models.CreateUserRequest) error
	DeleteUser(ctx context.Context, id int) error
}

// Write endpoint paths accepted by Submit.
const (
	PathEntrada = "/api/entrada"
	PathSaida   = "/api/saida"
	PathItens   = "/api/itens"
)

// APIError is a structured backend failure: the HTTP status plus the message
// from the `{"error": ...}` body when the backend supplied one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error: status=%d message=%s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error: status=%d", e.Status)
}

type errorBody struct {
	Error string `json:"error"`
}

// APIClient is a resty-backed implementation of Gateway.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds an inventory API client from the provided configuration.
// No request timeout is set: a hung backend call is left to run to completion
// and its panel simply never updates.
func NewClient(cfg config.BackendConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json")

	if cfg.APIToken != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIToken))
	}

	return &APIClient{httpClient: restyClient}
}

// FetchStats loads the aggregate dashboard statistics.
func (c *APIClient) FetchStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := new(models.DashboardStats)
	if err := c.get(ctx, "/api/dashboard/stats", stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// FetchStock loads the full stock list.
func (c *APIClient) FetchStock(ctx context.Context) ([]models.StockRow, error) {
	var rows []models.StockRow
	if err := c.get(ctx, "/api/estoque", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchMovements loads the movement history, pre-grouped by the backend.
func (c *APIClient) FetchMovements(ctx context.Context) (*models.Movements, error) {
	movs := new(models.Movements)
	if err := c.get(ctx, "/api/movimentacoes", movs); err != nil {
		return nil, err
	}
	return movs, nil
}

// FetchUsers loads the user list. Authorization failures surface as *APIError
// so callers can apply their own policy.
func (c *APIClient) FetchUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Submit posts a form body verbatim to one of the creation endpoints. Values
// are sent as the strings read from the form; the backend is the sole
// validator.
func (c *APIClient) Submit(ctx context.Context, path string, body map[string]string) error {
	return c.post(ctx, path, body)
}

// CreateUser registers a new dashboard user.
func (c *APIClient) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	return c.post(ctx, "/api/users", req)
}

// DeleteUser removes a user by id.
func (c *APIClient) DeleteUser(ctx context.Context, id int) error {
	apiErr := new(errorBody)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/api/users/%d", id))
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	if resp.IsError() {
		return &APIError{Status: resp.StatusCode(), Message: apiErr.Error}
	}

	return nil
}

func (c *APIClient) get(ctx context.Context, path string, out any) error {
	apiErr := new(errorBody)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(out).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}

	if resp.IsError() {
		return &APIError{Status: resp.StatusCode(), Message: apiErr.Error}
	}

	return nil
}

func (c *APIClient) post(ctx context.Context, path string, body any) error {
	apiErr := new(errorBody)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetError(apiErr).
		Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}

	if resp.IsError() {
		return &APIError{Status: resp.StatusCode(), Message: apiErr.Error}
	}

	return nil
}
