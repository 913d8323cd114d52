package service

import (
	"context"
	"fmt"

	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/event"
	"github.com/pindranil/waste-wise-report/internal/models"
	"github.com/pindranil/waste-wise-report/internal/store"
)

// AlertService owns the alert lifecycle: create, read, and status updates.
type AlertService struct {
	store  *store.Store
	events event.Sink
}

func NewAlertService(st *store.Store, events event.Sink) *AlertService {
	return &AlertService{store: st, events: events}
}

type CreateAlertInput struct {
	OwnerID     string
	Latitude    float64
	Longitude   float64
	GarbageType string
	Quantity    string
	Description string
	Image       *string
}

func (in *CreateAlertInput) validate() error {
	if in.OwnerID == "" {
		return fmt.Errorf("owner id required: %w", domain.ErrValidation)
	}
	if !domain.ValidGarbageType(in.GarbageType) {
		return fmt.Errorf("unknown garbage type %q: %w", in.GarbageType, domain.ErrValidation)
	}
	if !domain.ValidQuantity(in.Quantity) {
		return fmt.Errorf("unknown quantity %q: %w", in.Quantity, domain.ErrValidation)
	}
	return nil
}

func (s *AlertService) List(filter store.AlertFilter) []models.Alert {
	return s.store.ListAlerts(filter)
}

func (s *AlertService) Get(id string) (models.Alert, error) {
	return s.store.GetAlert(id)
}

// Create records a new pending alert and notifies the administrative
// recipient. Validation fails closed before any write.
func (s *AlertService) Create(ctx context.Context, in CreateAlertInput) (models.Alert, error) {
	if err := in.validate(); err != nil {
		return models.Alert{}, err
	}
	ts := now()
	a := models.Alert{
		ID:          newID("alert"),
		UserID:      in.OwnerID,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		GarbageType: in.GarbageType,
		Quantity:    in.Quantity,
		Image:       in.Image,
		Description: in.Description,
		Status:      domain.StatusPending,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := s.store.InsertAlert(ctx, a); err != nil {
		return models.Alert{}, err
	}
	if err := s.events.Dispatch(ctx, event.AlertCreated(a.GarbageType)); err != nil {
		return a, err
	}
	return a, nil
}

// UpdateStatus sets the alert status and refreshes updated_at. The owner is
// notified only when the status actually changed.
func (s *AlertService) UpdateStatus(ctx context.Context, id, newStatus string) (models.Alert, error) {
	if !domain.ValidStatus(newStatus) {
		return models.Alert{}, fmt.Errorf("unknown status %q: %w", newStatus, domain.ErrValidation)
	}
	var changed bool
	a, err := s.store.UpdateAlert(ctx, id, func(a *models.Alert) {
		changed = a.Status != newStatus
		a.Status = newStatus
		a.UpdatedAt = now()
	})
	if err != nil {
		return models.Alert{}, err
	}
	if changed {
		if err := s.events.Dispatch(ctx, event.StatusChanged(a.UserID, newStatus)); err != nil {
			return a, err
		}
	}
	return a, nil
}
