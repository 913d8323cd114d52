package store

import "context"

// Record keys in the blob backend. Each key holds one whole JSON array;
// every mutation overwrites the full value for its key.
const (
	KeyAlerts        = "alerts"
	KeyMessages      = "messages"
	KeyNotifications = "notifications"
)

// Backend is the durable key-value blob store behind the in-process record
// set. Load reports found=false for a key that has never been written so
// the store can fall back to seed data.
type Backend interface {
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}
