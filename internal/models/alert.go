package models

import "time"

// Alert is a user-submitted waste report with location, type, quantity and
// triage status.
type Alert struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	GarbageType  string            `json:"garbage_type"` // household, hazardous, construction, electronic, organic, recyclable, other
	Quantity     string            `json:"quantity"`     // small, medium, large
	Image        *string           `json:"image"`
	Description  string            `json:"description"`
	Status       string            `json:"status"` // pending, processing, completed
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	IsFormSent   bool              `json:"is_form_sent"`
	FormTypeID   *string           `json:"form_type_id"`
	FormResponse map[string]string `json:"form_response"`
}

// Clone returns a deep copy so callers never hold references into the store.
func (a Alert) Clone() Alert {
	c := a
	if a.Image != nil {
		img := *a.Image
		c.Image = &img
	}
	if a.FormTypeID != nil {
		ft := *a.FormTypeID
		c.FormTypeID = &ft
	}
	if a.FormResponse != nil {
		c.FormResponse = make(map[string]string, len(a.FormResponse))
		for k, v := range a.FormResponse {
			c.FormResponse[k] = v
		}
	}
	return c
}
