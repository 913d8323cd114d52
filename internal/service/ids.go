package service

import (
	"time"

	"github.com/google/uuid"
)

// newID returns an opaque id unique for the process lifetime, prefixed by
// entity kind so records stay recognizable in the raw blobs.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}
