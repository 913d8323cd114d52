package service

import (
	"context"
	"testing"

	"github.com/pindranil/waste-wise-report/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_WritesOneNotificationPerEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.notifs.Dispatch(ctx,
		event.Event{RecipientID: "user-1", Title: "a", Body: "b"},
		event.Event{RecipientID: "admin-1", Title: "c", Body: "d"},
	)
	require.NoError(t, err)

	assert.Len(t, env.notifs.List(""), 2)
	assert.Len(t, env.notifs.List("user-1"), 1)
	assert.Len(t, env.notifs.List("admin-1"), 1)
}

func TestCreate_DefaultsUnread(t *testing.T) {
	env := newTestEnv(t)
	n, err := env.notifs.Create(context.Background(), "user-1", "Title", "Body")
	require.NoError(t, err)
	assert.False(t, n.IsRead)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestMarkRead_UnknownIDIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.notifs.MarkRead(context.Background(), "notif-missing"))
}

func TestMarkAllRead_OnlyTouchesRecipient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.notifs.Create(ctx, "user-1", "t", "b")
	require.NoError(t, err)
	_, err = env.notifs.Create(ctx, "admin-1", "t", "b")
	require.NoError(t, err)

	require.NoError(t, env.notifs.MarkAllRead(ctx, "user-1"))

	for _, n := range env.notifs.List("user-1") {
		assert.True(t, n.IsRead)
	}
	for _, n := range env.notifs.List("admin-1") {
		assert.False(t, n.IsRead)
	}
	// No matches is a no-op, not an error.
	require.NoError(t, env.notifs.MarkAllRead(ctx, "user-99"))
}
