package service

import (
	"context"

	"github.com/pindranil/waste-wise-report/internal/event"
	"github.com/pindranil/waste-wise-report/internal/models"
	"github.com/pindranil/waste-wise-report/internal/store"
)

// NotificationService stores and serves notifications. It is the event.Sink
// the mutating services dispatch their fan-out events through.
type NotificationService struct {
	store *store.Store
}

func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{store: st}
}

// Dispatch writes one notification per event. The entity write that raised
// the events has already been persisted independently.
func (s *NotificationService) Dispatch(ctx context.Context, events ...event.Event) error {
	for _, ev := range events {
		if _, err := s.Create(ctx, ev.RecipientID, ev.Title, ev.Body); err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationService) Create(ctx context.Context, recipientID, title, body string) (models.Notification, error) {
	n := models.Notification{
		ID:        newID("notif"),
		UserID:    recipientID,
		Title:     title,
		Body:      body,
		CreatedAt: now(),
	}
	if err := s.store.InsertNotification(ctx, n); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// List returns notifications newest first; an empty recipientID returns all.
func (s *NotificationService) List(recipientID string) []models.Notification {
	return s.store.ListNotifications(recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.store.MarkNotificationRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.store.MarkAllNotificationsRead(ctx, recipientID)
}
