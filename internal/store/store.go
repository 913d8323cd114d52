package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/models"
)

// Store owns the four entity record sets. Alerts, messages and notifications
// round-trip through the blob backend as whole JSON arrays; form types and
// demo users are immutable seed data. A single lock serializes writers —
// there is no finer interleaving contract to honor.
type Store struct {
	backend Backend

	mu            sync.RWMutex
	alerts        []models.Alert
	messages      []models.Message
	notifications []models.Notification
	formTypes     []models.FormType
	users         []models.User
}

func New(backend Backend) *Store {
	return &Store{
		backend:   backend,
		formTypes: DefaultFormTypes(),
		users:     DefaultUsers(),
	}
}

// Load reads all three records once at startup. A key that has never been
// written falls back to seed data; a backend failure or unparsable blob is
// surfaced as ErrPersistenceUnavailable, never masked as empty state.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := loadRecord(ctx, s.backend, KeyAlerts, &s.alerts, DefaultAlerts); err != nil {
		return err
	}
	if err := loadRecord(ctx, s.backend, KeyMessages, &s.messages, DefaultMessages); err != nil {
		return err
	}
	return loadRecord(ctx, s.backend, KeyNotifications, &s.notifications, DefaultNotifications)
}

func loadRecord[T any](ctx context.Context, b Backend, key string, dst *[]T, seed func() []T) error {
	data, found, err := b.Load(ctx, key)
	if err != nil {
		return persistErr("load "+key, err)
	}
	if !found {
		*dst = seed()
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return persistErr("decode "+key, err)
	}
	return nil
}

func persistErr(op string, cause error) error {
	return fmt.Errorf("%s: %v: %w", op, cause, domain.ErrPersistenceUnavailable)
}

func (s *Store) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return persistErr("encode "+key, err)
	}
	if err := s.backend.Save(ctx, key, data); err != nil {
		return persistErr("save "+key, err)
	}
	return nil
}

// AlertFilter matches alerts against every provided field. A status or
// garbage type of "all" (or empty) means no filter.
type AlertFilter struct {
	OwnerID     string
	Status      string
	GarbageType string
}

func (f AlertFilter) matches(a *models.Alert) bool {
	if f.OwnerID != "" && a.UserID != f.OwnerID {
		return false
	}
	if f.Status != "" && f.Status != domain.FilterAll && a.Status != f.Status {
		return false
	}
	if f.GarbageType != "" && f.GarbageType != domain.FilterAll && a.GarbageType != f.GarbageType {
		return false
	}
	return true
}

// ListAlerts returns matching alerts, newest first. Equal timestamps keep
// insertion order.
func (s *Store) ListAlerts(filter AlertFilter) []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Alert, 0, len(s.alerts))
	for i := range s.alerts {
		if filter.matches(&s.alerts[i]) {
			out = append(out, s.alerts[i].Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) GetAlert(id string) (models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			return s.alerts[i].Clone(), nil
		}
	}
	return models.Alert{}, fmt.Errorf("alert %s: %w", id, domain.ErrNotFound)
}

func (s *Store) InsertAlert(ctx context.Context, a models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append([]models.Alert{a.Clone()}, s.alerts...)
	return s.save(ctx, KeyAlerts, s.alerts)
}

// UpdateAlert applies mutate to the stored alert and rewrites the record.
func (s *Store) UpdateAlert(ctx context.Context, id string, mutate func(*models.Alert)) (models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			mutate(&s.alerts[i])
			if err := s.save(ctx, KeyAlerts, s.alerts); err != nil {
				return models.Alert{}, err
			}
			return s.alerts[i].Clone(), nil
		}
	}
	return models.Alert{}, fmt.Errorf("alert %s: %w", id, domain.ErrNotFound)
}

// ListMessagesByAlert returns the alert's messages, oldest first. Equal
// timestamps keep insertion order.
func (s *Store) ListMessagesByAlert(alertID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if m.AlertID == alertID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) InsertMessage(ctx context.Context, m models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
	return s.save(ctx, KeyMessages, s.messages)
}

// ListNotifications returns notifications newest first, optionally limited
// to one recipient.
func (s *Store) ListNotifications(recipientID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, 0)
	for _, n := range s.notifications {
		if recipientID == "" || n.UserID == recipientID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) InsertNotification(ctx context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
	return s.save(ctx, KeyNotifications, s.notifications)
}

// MarkNotificationRead flips one notification to read. Unknown ids are a
// no-op, not an error.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if s.notifications[i].IsRead {
				return nil
			}
			s.notifications[i].IsRead = true
			return s.save(ctx, KeyNotifications, s.notifications)
		}
	}
	return nil
}

// MarkAllNotificationsRead flips every notification owned by recipientID.
func (s *Store) MarkAllNotificationsRead(ctx context.Context, recipientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for i := range s.notifications {
		if s.notifications[i].UserID == recipientID && !s.notifications[i].IsRead {
			s.notifications[i].IsRead = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(ctx, KeyNotifications, s.notifications)
}

func (s *Store) FormTypes() []models.FormType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FormType, len(s.formTypes))
	copy(out, s.formTypes)
	return out
}

func (s *Store) FormType(id string) (models.FormType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ft := range s.formTypes {
		if ft.ID == id {
			return ft, nil
		}
	}
	return models.FormType{}, fmt.Errorf("form type %s: %w", id, domain.ErrNotFound)
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}
