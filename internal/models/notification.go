package models

import "time"

// Notification is a one-way informational event for a single recipient.
// Created only as a side effect of alert/form/message mutations; the only
// transition is unread -> read.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
