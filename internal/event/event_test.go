package event

import (
	"testing"

	"github.com/pindranil/waste-wise-report/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAlertCreated_AddressesAdmin(t *testing.T) {
	ev := AlertCreated(domain.GarbageHazardous)
	assert.Equal(t, domain.AdminRecipientID, ev.RecipientID)
	assert.Equal(t, "New Alert", ev.Title)
	assert.Contains(t, ev.Body, "hazardous")
}

func TestStatusChanged_AddressesOwner(t *testing.T) {
	ev := StatusChanged("user-1", domain.StatusProcessing)
	assert.Equal(t, "user-1", ev.RecipientID)
	assert.Contains(t, ev.Body, `"processing"`)
}

func TestFormSent_AddressesOwner(t *testing.T) {
	ev := FormSent("user-1", "Hazardous Waste Form")
	assert.Equal(t, "user-1", ev.RecipientID)
	assert.Contains(t, ev.Body, "Hazardous Waste Form")
}

func TestFormResponseReceived_AddressesAdmin(t *testing.T) {
	ev := FormResponseReceived("alert-9")
	assert.Equal(t, domain.AdminRecipientID, ev.RecipientID)
	assert.Contains(t, ev.Body, "alert-9")
}

func TestMessageReceived_RoutesToCounterparty(t *testing.T) {
	fromAdmin := MessageReceived(domain.RoleAdmin, "user-1")
	assert.Equal(t, "user-1", fromAdmin.RecipientID)

	fromUser := MessageReceived(domain.RoleUser, "user-1")
	assert.Equal(t, domain.AdminRecipientID, fromUser.RecipientID)
}
