package models

import "time"

// Message is one chat entry scoped to an alert. Created only via send;
// IsRead is stored but no in-scope path flips it.
type Message struct {
	ID         string    `json:"id"`
	AlertID    string    `json:"alert_id"`
	SenderID   string    `json:"sender_id"`
	SenderRole string    `json:"sender_role"` // user, admin
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	IsRead     bool      `json:"is_read"`
}
