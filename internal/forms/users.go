package forms

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/internal/notify"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
)

// ErrNotConfirmed indicates a deletion was requested without the explicit
// confirmation step; no request is issued to the backend in that case.
var ErrNotConfirmed = errors.New("deletion not confirmed")

// UserRenderer is the single panel re-rendered after user mutations. User
// actions deliberately do not trigger the full orchestrator: they only touch
// the user table.
type UserRenderer interface {
	Render(ctx context.Context) error
}

// UserActions implements the bespoke user-creation and user-deletion
// submitters.
type UserActions struct {
	gw       inventory.Gateway
	notifier *notify.Emitter
	users    UserRenderer
	logger   *zap.Logger
}

// NewUserActions wires the user mutation submitters.
func NewUserActions(gw inventory.Gateway, notifier *notify.Emitter, users UserRenderer, logger *zap.Logger) *UserActions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserActions{gw: gw, notifier: notifier, users: users, logger: logger}
}

// Create registers a new user. On success the user panel alone is
// re-rendered; on failure the backend message is surfaced and nothing is
// refreshed.
func (a *UserActions) Create(ctx context.Context, req models.CreateUserRequest) error {
	if err := a.gw.CreateUser(ctx, req); err != nil {
		a.logger.Warn("user creation rejected", zap.String("username", req.Username), zap.Error(err))
		a.notifier.Push(failureMessage(err), notify.LevelError)
		return err
	}

	a.notifier.Push("Usuário criado", notify.LevelSuccess)
	if err := a.users.Render(ctx); err != nil {
		a.logger.Warn("user panel refresh failed after create", zap.Error(err))
	}
	return nil
}

// Delete removes a user. The request is only issued when confirmed is true.
// The user panel is re-rendered afterwards regardless of outcome, so the
// table reflects whatever the backend now holds.
func (a *UserActions) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	deleteErr := a.gw.DeleteUser(ctx, id)
	if deleteErr != nil {
		a.logger.Warn("user deletion rejected", zap.Int("id", id), zap.Error(deleteErr))
		a.notifier.Push(failureMessage(deleteErr), notify.LevelError)
	}

	if err := a.users.Render(ctx); err != nil {
		a.logger.Warn("user panel refresh failed after delete", zap.Error(err))
	}
	return deleteErr
}
