package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/event"
	"github.com/pindranil/waste-wise-report/internal/models"
	"github.com/pindranil/waste-wise-report/internal/store"
)

// FormService attaches follow-up form templates to alerts and records the
// owner's structured responses. Templates themselves are immutable seed data.
type FormService struct {
	store  *store.Store
	events event.Sink
}

func NewFormService(st *store.Store, events event.Sink) *FormService {
	return &FormService{store: st, events: events}
}

func (s *FormService) ListTypes() []models.FormType {
	return s.store.FormTypes()
}

// SendForm marks the alert as having a pending form and notifies its owner.
// Re-sending overwrites the form reference; there is no duplicate guard.
func (s *FormService) SendForm(ctx context.Context, alertID, formTypeID string) (models.Alert, error) {
	ft, err := s.store.FormType(formTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return models.Alert{}, fmt.Errorf("unknown form type %q: %w", formTypeID, domain.ErrValidation)
		}
		return models.Alert{}, err
	}
	a, err := s.store.UpdateAlert(ctx, alertID, func(a *models.Alert) {
		a.IsFormSent = true
		id := formTypeID
		a.FormTypeID = &id
		a.UpdatedAt = now()
	})
	if err != nil {
		return models.Alert{}, err
	}
	if err := s.events.Dispatch(ctx, event.FormSent(a.UserID, ft.Name)); err != nil {
		return a, err
	}
	return a, nil
}

// SubmitResponse stores the response map verbatim and notifies the
// administrative recipient. Rejected when no form has been sent; field-level
// validation (required fields, select options) belongs to the form renderer.
func (s *FormService) SubmitResponse(ctx context.Context, alertID string, response map[string]string) (models.Alert, error) {
	existing, err := s.store.GetAlert(alertID)
	if err != nil {
		return models.Alert{}, err
	}
	if !existing.IsFormSent || existing.FormTypeID == nil {
		return models.Alert{}, fmt.Errorf("no form sent for alert %s: %w", alertID, domain.ErrValidation)
	}
	a, err := s.store.UpdateAlert(ctx, alertID, func(a *models.Alert) {
		a.FormResponse = make(map[string]string, len(response))
		for k, v := range response {
			a.FormResponse[k] = v
		}
		a.UpdatedAt = now()
	})
	if err != nil {
		return models.Alert{}, err
	}
	if err := s.events.Dispatch(ctx, event.FormResponseReceived(alertID)); err != nil {
		return a, err
	}
	return a, nil
}
