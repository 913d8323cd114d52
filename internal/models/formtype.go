package models

// FormField is one question in a follow-up form. Options is only set for
// select fields.
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"` // text, textarea, select, checkbox
	Label    string   `json:"label"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// FormType is an admin-defined template of follow-up questions attachable
// to an alert. Immutable reference data, seeded at startup.
type FormType struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Fields      []FormField `json:"fields_json"`
}
