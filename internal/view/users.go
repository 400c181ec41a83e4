package view

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
)

// protectedUsername never gets a delete action rendered for it.
const protectedUsername = "admin"

// UsersRenderer renders the admin-only user table. It is constructed with an
// explicit capability flag: when disabled it never calls the users endpoint,
// and authorization failures from the backend are absorbed silently (the
// panel should not betray its existence to non-admins).
type UsersRenderer struct {
	gw      inventory.Gateway
	surface *Surface
	enabled bool
	logger  *zap.Logger
}

// NewUsersRenderer wires the user table renderer.
func NewUsersRenderer(gw inventory.Gateway, surface *Surface, enabled bool, logger *zap.Logger) *UsersRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UsersRenderer{gw: gw, surface: surface, enabled: enabled, logger: logger}
}

// Name identifies the panel in orchestrator logs.
func (r *UsersRenderer) Name() string { return "usuarios" }

// Render fetches the user list and replaces the panel. Disabled renderers
// and authorization failures are quiet no-ops that leave the panel untouched.
func (r *UsersRenderer) Render(ctx context.Context) error {
	if !r.enabled {
		return nil
	}

	users, err := r.gw.FetchUsers(ctx)
	if err != nil {
		var apiErr *inventory.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			r.logger.Debug("users fetch denied, panel left empty", zap.Int("status", apiErr.Status))
			return nil
		}
		r.logger.Error("users fetch failed, panel unchanged", zap.Error(err))
		return err
	}

	views := make([]models.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, models.UserView{
			ID:          u.ID,
			Username:    u.Username,
			Admin:       u.IsAdmin,
			PodeExcluir: u.Username != protectedUsername,
		})
	}

	r.surface.SetUsers(models.UsersPanel{Rows: views})
	return nil
}
