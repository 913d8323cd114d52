// Package event holds the notification fan-out rules: each state transition
// in the alert, form and messaging services maps to zero or one Event. The
// rules are pure; dispatching (the notification write) is the Sink's job.
package event

import (
	"context"
	"fmt"

	"github.com/pindranil/waste-wise-report/internal/domain"
)

// Event is one pending notification: who hears about a state transition and
// what they are told.
type Event struct {
	RecipientID string
	Title       string
	Body        string
}

// Sink performs the notification write for dispatched events.
type Sink interface {
	Dispatch(ctx context.Context, events ...Event) error
}

// AlertCreated notifies the administrative recipient about a new report.
func AlertCreated(garbageType string) Event {
	return Event{
		RecipientID: domain.AdminRecipientID,
		Title:       "New Alert",
		Body:        fmt.Sprintf("New %s waste report.", garbageType),
	}
}

// StatusChanged notifies the alert owner. Emitted only when the status
// actually changed.
func StatusChanged(ownerID, newStatus string) Event {
	return Event{
		RecipientID: ownerID,
		Title:       "Alert Status Updated",
		Body:        fmt.Sprintf("Your alert has been updated to %q.", newStatus),
	}
}

// FormSent notifies the alert owner that a follow-up form awaits them.
func FormSent(ownerID, formName string) Event {
	return Event{
		RecipientID: ownerID,
		Title:       "Follow-up Form",
		Body:        fmt.Sprintf("Please fill in the %s form for your alert.", formName),
	}
}

// FormResponseReceived notifies the administrative recipient that an owner
// answered a follow-up form.
func FormResponseReceived(alertID string) Event {
	return Event{
		RecipientID: domain.AdminRecipientID,
		Title:       "Form Response Received",
		Body:        fmt.Sprintf("A form response was submitted for alert %s.", alertID),
	}
}

// MessageReceived notifies the counterparty of a chat message: admin senders
// reach the alert owner, user senders reach the administrative recipient.
func MessageReceived(senderRole, ownerID string) Event {
	recipient := domain.AdminRecipientID
	body := "A citizen sent a new message on a waste report."
	if senderRole == domain.RoleAdmin {
		recipient = ownerID
		body = "You have a new message on your waste report."
	}
	return Event{
		RecipientID: recipient,
		Title:       "New Message",
		Body:        body,
	}
}
