package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/event"
	"github.com/pindranil/waste-wise-report/internal/models"
	"github.com/pindranil/waste-wise-report/internal/store"
)

// MessageService appends chat messages scoped to an alert and notifies the
// counterparty.
type MessageService struct {
	store  *store.Store
	events event.Sink
}

func NewMessageService(st *store.Store, events event.Sink) *MessageService {
	return &MessageService{store: st, events: events}
}

func (s *MessageService) ListByAlert(alertID string) []models.Message {
	return s.store.ListMessagesByAlert(alertID)
}

// Send records the message and notifies the other party: admin senders reach
// the alert owner, user senders reach the administrative recipient. A
// message addressed to a nonexistent alert is still recorded; only the
// notification side effect is skipped.
func (s *MessageService) Send(ctx context.Context, alertID, senderID, senderRole, content string) (models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return models.Message{}, fmt.Errorf("empty content: %w", domain.ErrValidation)
	}
	if senderRole != domain.RoleUser && senderRole != domain.RoleAdmin {
		return models.Message{}, fmt.Errorf("unknown sender role %q: %w", senderRole, domain.ErrValidation)
	}
	m := models.Message{
		ID:         newID("msg"),
		AlertID:    alertID,
		SenderID:   senderID,
		SenderRole: senderRole,
		Content:    content,
		CreatedAt:  now(),
	}
	if err := s.store.InsertMessage(ctx, m); err != nil {
		return models.Message{}, err
	}
	a, err := s.store.GetAlert(alertID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return m, nil
		}
		return m, err
	}
	if err := s.events.Dispatch(ctx, event.MessageReceived(senderRole, a.UserID)); err != nil {
		return m, err
	}
	return m, nil
}
