package service

import (
	"context"
	"testing"

	"github.com/pindranil/waste-wise-report/internal/store"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store  *store.Store
	alerts *AlertService
	forms  *FormService
	msgs   *MessageService
	notifs *NotificationService
}

// newTestEnv wires the services over an empty in-memory store, with the
// notification service as the fan-out sink (same wiring as the router).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	b := store.NewMemoryBackend()
	ctx := context.Background()
	for _, key := range []string{store.KeyAlerts, store.KeyMessages, store.KeyNotifications} {
		require.NoError(t, b.Save(ctx, key, []byte("[]")))
	}
	st := store.New(b)
	require.NoError(t, st.Load(ctx))

	notifs := NewNotificationService(st)
	return &testEnv{
		store:  st,
		alerts: NewAlertService(st, notifs),
		forms:  NewFormService(st, notifs),
		msgs:   NewMessageService(st, notifs),
		notifs: notifs,
	}
}
