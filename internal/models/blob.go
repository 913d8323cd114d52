package models

import "time"

// Blob is one whole-record JSON document in the durable key-value store.
// The only table the service owns; every mutation overwrites the full value.
type Blob struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     []byte    `gorm:"type:blob" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Blob) TableName() string {
	return "blobs"
}
