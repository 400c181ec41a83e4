package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/domain/models"
	"github.com/rlopes-dev/estoque-painel/internal/forms"
	"github.com/rlopes-dev/estoque-painel/internal/notify"
	"github.com/rlopes-dev/estoque-painel/internal/refresh"
	"github.com/rlopes-dev/estoque-painel/internal/view"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
)

// PanelHandler exposes the rendered dashboard state plus the mutation and
// search entry points to the browser.
type PanelHandler struct {
	orchestrator *refresh.Orchestrator
	surface      *view.Surface
	stock        *view.StockRenderer
	submitter    *forms.Submitter
	userActions  *forms.UserActions
	notifier     *notify.Emitter
	logger       *zap.Logger
}

// NewPanelHandler constructs the HTTP handler adapter for the dashboard.
func NewPanelHandler(
	orchestrator *refresh.Orchestrator,
	surface *view.Surface,
	stock *view.StockRenderer,
	submitter *forms.Submitter,
	userActions *forms.UserActions,
	notifier *notify.Emitter,
	logger *zap.Logger,
) *PanelHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PanelHandler{
		orchestrator: orchestrator,
		surface:      surface,
		stock:        stock,
		submitter:    submitter,
		userActions:  userActions,
		notifier:     notifier,
		logger:       logger,
	}
}

type stateResponse struct {
	view.Snapshot
	Notificacoes []notify.Notification  `json:"notificacoes"`
	Forms        map[string]forms.State `json:"forms"`
}

// Form ids known to the state endpoint.
var formIDs = []string{"formEntrada", "formSaida", "formItem"}

// State returns the whole rendered surface, the active notifications and the
// current form states.
func (h *PanelHandler) State(c *gin.Context) {
	resp := stateResponse{
		Snapshot:     h.surface.Snapshot(),
		Notificacoes: h.notifier.Active(),
		Forms:        make(map[string]forms.State, len(formIDs)),
	}
	for _, id := range formIDs {
		if state, ok := h.submitter.State(id); ok {
			resp.Forms[id] = state
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh re-renders every panel and returns the fresh surface.
func (h *PanelHandler) Refresh(c *gin.Context) {
	h.orchestrator.RefreshAll(c.Request.Context())
	c.JSON(http.StatusOK, h.surface.Snapshot())
}

type searchRequest struct {
	Termo string `json:"termo"`
}

// Search updates the stock search term and re-renders the stock panel alone,
// the per-keystroke path.
func (h *PanelHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.stock.SetTerm(req.Termo)
	if err := h.stock.Render(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "estoque indisponível"})
		return
	}

	c.JSON(http.StatusOK, h.surface.Stock())
}

// SubmitForm runs the generic submission pipeline for one registered form.
// The body is the raw input-id to value map read from the page.
func (h *PanelHandler) SubmitForm(c *gin.Context) {
	formID := c.Param("id")

	var inputs map[string]string
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.submitter.Submit(c.Request.Context(), formID, inputs); err != nil {
		if errors.Is(err, forms.ErrUnknownForm) {
			c.JSON(http.StatusNotFound, gin.H{"error": "formulário desconhecido"})
			return
		}
		h.respondBackendError(c, err)
		return
	}

	state, _ := h.submitter.State(formID)
	c.JSON(http.StatusOK, gin.H{"ok": true, "form": state})
}

// CreateUser runs the bespoke user-creation submitter.
func (h *PanelHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.userActions.Create(c.Request.Context(), req); err != nil {
		h.respondBackendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// DeleteUser runs the user-deletion action. The explicit confirmation flag
// must be present; without it no backend request is issued.
func (h *PanelHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	confirmed, _ := strconv.ParseBool(c.Query("confirmado"))

	if err := h.userActions.Delete(c.Request.Context(), id, confirmed); err != nil {
		if errors.Is(err, forms.ErrNotConfirmed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "confirmação necessária"})
			return
		}
		h.respondBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Notifications returns the currently active notification stack.
func (h *PanelHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notificacoes": h.notifier.Active()})
}

// respondBackendError relays a structured backend failure with its original
// status, or 502 when the request never produced a response.
func (h *PanelHandler) respondBackendError(c *gin.Context, err error) {
	var apiErr *inventory.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = "Erro"
		}
		c.JSON(apiErr.Status, gin.H{"error": message})
		return
	}

	h.logger.Error("backend request failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "Erro"})
}
