package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyStore(t *testing.T) (*Store, *MemoryBackend) {
	t.Helper()
	b := NewMemoryBackend()
	ctx := context.Background()
	for _, key := range []string{KeyAlerts, KeyMessages, KeyNotifications} {
		require.NoError(t, b.Save(ctx, key, []byte("[]")))
	}
	s := New(b)
	require.NoError(t, s.Load(ctx))
	return s, b
}

func testAlert(id, owner, status, garbageType string, createdAt time.Time) models.Alert {
	return models.Alert{
		ID:          id,
		UserID:      owner,
		GarbageType: garbageType,
		Quantity:    domain.QuantityMedium,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestLoad_SeedsDefaultsWhenEmpty(t *testing.T) {
	s := New(NewMemoryBackend())
	require.NoError(t, s.Load(context.Background()))

	assert.Len(t, s.ListAlerts(AlertFilter{}), 3)
	assert.Len(t, s.FormTypes(), 3)
	assert.Len(t, s.ListNotifications(""), 2)

	u, err := s.UserByEmail("admin@demo.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}

func TestLoad_BackendFailureIsPersistenceUnavailable(t *testing.T) {
	b := NewMemoryBackend()
	b.FailNext = errors.New("disk gone")
	s := New(b)
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
}

func TestLoad_UnparsableBlobIsPersistenceUnavailable(t *testing.T) {
	b := NewMemoryBackend()
	require.NoError(t, b.Save(context.Background(), KeyAlerts, []byte("{not json")))
	s := New(b)
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
}

func TestRoundTrip_RestartReproducesRecords(t *testing.T) {
	s, b := emptyStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.InsertAlert(ctx, testAlert("alert-a", "user-1", domain.StatusPending, domain.GarbageHousehold, base)))
	require.NoError(t, s.InsertAlert(ctx, testAlert("alert-b", "user-1", domain.StatusCompleted, domain.GarbageOrganic, base.Add(time.Hour))))
	require.NoError(t, s.InsertMessage(ctx, models.Message{ID: "m1", AlertID: "alert-a", SenderID: "user-1", SenderRole: domain.RoleUser, Content: "hi", CreatedAt: base}))
	require.NoError(t, s.InsertNotification(ctx, models.Notification{ID: "n1", UserID: domain.AdminRecipientID, Title: "t", Body: "b", CreatedAt: base}))

	reloaded := New(b)
	require.NoError(t, reloaded.Load(ctx))

	for _, pair := range [][2]interface{}{
		{s.ListAlerts(AlertFilter{}), reloaded.ListAlerts(AlertFilter{})},
		{s.ListMessagesByAlert("alert-a"), reloaded.ListMessagesByAlert("alert-a")},
		{s.ListNotifications(""), reloaded.ListNotifications("")},
	} {
		want, err := json.Marshal(pair[0])
		require.NoError(t, err)
		got, err := json.Marshal(pair[1])
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestListAlerts_FilterAndOrdering(t *testing.T) {
	s, _ := emptyStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.InsertAlert(ctx, testAlert("a1", "user-1", domain.StatusPending, domain.GarbageHousehold, base)))
	require.NoError(t, s.InsertAlert(ctx, testAlert("a2", "user-2", domain.StatusProcessing, domain.GarbageHazardous, base.Add(time.Minute))))
	require.NoError(t, s.InsertAlert(ctx, testAlert("a3", "user-1", domain.StatusCompleted, domain.GarbageHousehold, base.Add(2*time.Minute))))

	all := s.ListAlerts(AlertFilter{})
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a3", "a2", "a1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	completed := s.ListAlerts(AlertFilter{Status: domain.StatusCompleted})
	require.Len(t, completed, 1)
	assert.Equal(t, "a3", completed[0].ID)

	// "all" means no filter.
	assert.Len(t, s.ListAlerts(AlertFilter{Status: domain.FilterAll, GarbageType: domain.FilterAll}), 3)

	// Union of the per-status lists equals the unfiltered list, no dupes.
	seen := map[string]int{}
	for _, status := range []string{domain.StatusPending, domain.StatusProcessing, domain.StatusCompleted} {
		for _, a := range s.ListAlerts(AlertFilter{Status: status}) {
			seen[a.ID]++
		}
	}
	assert.Len(t, seen, len(all))
	for id, n := range seen {
		assert.Equal(t, 1, n, "alert %s appeared %d times", id, n)
	}

	mine := s.ListAlerts(AlertFilter{OwnerID: "user-1"})
	assert.Len(t, mine, 2)
}

func TestUpdateAlert_NotFound(t *testing.T) {
	s, _ := emptyStore(t)
	_, err := s.UpdateAlert(context.Background(), "nope", func(a *models.Alert) {})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveFailure_SurfacedToCaller(t *testing.T) {
	s, b := emptyStore(t)
	b.FailNext = errors.New("disk gone")
	err := s.InsertAlert(context.Background(), testAlert("a1", "user-1", domain.StatusPending, domain.GarbageOther, time.Now()))
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
}

func TestListAlerts_ReturnsCopies(t *testing.T) {
	s, _ := emptyStore(t)
	ctx := context.Background()
	a := testAlert("a1", "user-1", domain.StatusPending, domain.GarbageHousehold, time.Now().UTC())
	a.FormResponse = map[string]string{"k": "v"}
	require.NoError(t, s.InsertAlert(ctx, a))

	out := s.ListAlerts(AlertFilter{})
	require.Len(t, out, 1)
	out[0].FormResponse["k"] = "mutated"
	out[0].Status = domain.StatusCompleted

	again, err := s.GetAlert("a1")
	require.NoError(t, err)
	assert.Equal(t, "v", again.FormResponse["k"])
	assert.Equal(t, domain.StatusPending, again.Status)
}

func TestMarkNotificationRead_Terminal(t *testing.T) {
	s, _ := emptyStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertNotification(ctx, models.Notification{ID: "n1", UserID: "user-1", CreatedAt: time.Now()}))

	require.NoError(t, s.MarkNotificationRead(ctx, "n1"))
	require.NoError(t, s.MarkNotificationRead(ctx, "n1")) // idempotent
	require.NoError(t, s.MarkNotificationRead(ctx, "missing")) // no-op, not an error

	out := s.ListNotifications("user-1")
	require.Len(t, out, 1)
	assert.True(t, out[0].IsRead)
}

func TestMarkAllNotificationsRead_ScopedToRecipient(t *testing.T) {
	s, _ := emptyStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertNotification(ctx, models.Notification{ID: "n1", UserID: "user-1", CreatedAt: time.Now()}))
	require.NoError(t, s.InsertNotification(ctx, models.Notification{ID: "n2", UserID: "user-1", CreatedAt: time.Now()}))
	require.NoError(t, s.InsertNotification(ctx, models.Notification{ID: "n3", UserID: domain.AdminRecipientID, CreatedAt: time.Now()}))

	require.NoError(t, s.MarkAllNotificationsRead(ctx, "user-1"))

	for _, n := range s.ListNotifications("user-1") {
		assert.True(t, n.IsRead)
	}
	admin := s.ListNotifications(domain.AdminRecipientID)
	require.Len(t, admin, 1)
	assert.False(t, admin[0].IsRead)
}

func TestFormType_Lookup(t *testing.T) {
	s, _ := emptyStore(t)
	ft, err := s.FormType("form-2")
	require.NoError(t, err)
	assert.Equal(t, "Hazardous Waste Form", ft.Name)

	_, err = s.FormType("form-99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
