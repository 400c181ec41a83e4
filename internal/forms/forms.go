// Package forms implements the mutation submitters: a generic form-submission
// pipeline bound to the three entity-creation forms, plus the bespoke user
// actions in users.go.
package forms

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rlopes-dev/estoque-painel/internal/notify"
	"github.com/rlopes-dev/estoque-painel/pkg/clients/inventory"
)

// ErrUnknownForm indicates a submission for a form id that was never
// registered.
var ErrUnknownForm = errors.New("unknown form")

const dateLayout = "2006-01-02"

// Spec binds one form to a write endpoint. Fields maps API field names to the
// form's input identifiers; the submitter reads each mapped input's string
// value verbatim, with no coercion or validation.
type Spec struct {
	ID       string
	Endpoint string
	Fields   map[string]string
	// Modal marks forms hosted in a dialog that closes on success.
	Modal bool
	// DateFields lists API fields defaulted to today's date when blank.
	DateFields []string
}

// State is a form's current input values and, for modal forms, whether the
// dialog is open.
type State struct {
	Values    map[string]string `json:"values"`
	ModalOpen bool              `json:"modal_open"`
}

// Refresher triggers the full panel refresh that follows a successful
// mutation.
type Refresher interface {
	RefreshAll(ctx context.Context)
}

// Submitter owns the registered forms and executes their submissions.
type Submitter struct {
	gw        inventory.Gateway
	notifier  *notify.Emitter
	refresher Refresher
	logger    *zap.Logger
	now       func() time.Time

	mu     sync.Mutex
	specs  map[string]Spec
	states map[string]*State
}

// NewSubmitter wires a submitter over the gateway, notifier and orchestrator.
func NewSubmitter(gw inventory.Gateway, notifier *notify.Emitter, refresher Refresher, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		gw:        gw,
		notifier:  notifier,
		refresher: refresher,
		logger:    logger,
		now:       time.Now,
		specs:     make(map[string]Spec),
		states:    make(map[string]*State),
	}
}

// Register binds a form spec. Date fields start out prefilled with today's
// date, mirroring the page filling the date inputs at load time.
func (s *Submitter) Register(spec Spec) {
	values := make(map[string]string, len(spec.Fields))
	for field, input := range spec.Fields {
		if containsField(spec.DateFields, field) {
			values[input] = s.now().Format(dateLayout)
		} else {
			values[input] = ""
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.specs[spec.ID] = spec
	s.states[spec.ID] = &State{Values: values}
}

// State returns a copy of the form's current state.
func (s *Submitter) State(formID string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[formID]
	if !ok {
		return State{}, false
	}

	values := make(map[string]string, len(state.Values))
	for k, v := range state.Values {
		values[k] = v
	}
	return State{Values: values, ModalOpen: state.ModalOpen}, true
}

// OpenModal marks a modal form's dialog as open.
func (s *Submitter) OpenModal(formID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[formID]; ok {
		state.ModalOpen = true
	}
}

// Submit runs one form submission with the provided input values.
//
// Success: success notification, inputs cleared, enclosing modal dismissed,
// and an unconditional full refresh of every panel.
// Failure: error notification carrying the backend message (or a generic
// fallback), input values preserved so the user can correct and resubmit, and
// no refresh.
func (s *Submitter) Submit(ctx context.Context, formID string, inputs map[string]string) error {
	s.mu.Lock()
	spec, ok := s.specs[formID]
	if !ok {
		s.mu.Unlock()
		return ErrUnknownForm
	}
	state := s.states[formID]

	// Remember what was typed before attempting the request, so a failed
	// submission preserves the values for correction.
	for input := range state.Values {
		state.Values[input] = inputs[input]
	}
	s.mu.Unlock()

	body := make(map[string]string, len(spec.Fields))
	for field, input := range spec.Fields {
		value := inputs[input]
		if value == "" && containsField(spec.DateFields, field) {
			value = s.now().Format(dateLayout)
		}
		body[field] = value
	}

	if err := s.gw.Submit(ctx, spec.Endpoint, body); err != nil {
		s.logger.Warn("form submission rejected",
			zap.String("form", formID),
			zap.String("endpoint", spec.Endpoint),
			zap.Error(err))
		s.notifier.Push(failureMessage(err), notify.LevelError)
		return err
	}

	s.notifier.Push("Sucesso!", notify.LevelSuccess)

	s.mu.Lock()
	for input := range state.Values {
		state.Values[input] = ""
	}
	if spec.Modal {
		state.ModalOpen = false
	}
	s.mu.Unlock()

	s.refresher.RefreshAll(ctx)
	return nil
}

// failureMessage extracts the backend-supplied error message, falling back to
// a generic one when the body carried none.
func failureMessage(err error) string {
	var apiErr *inventory.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Erro"
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
