package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AdminRecipientID is the fixed administrative recipient for notifications
// raised by user actions (new alerts, form responses, user messages).
const AdminRecipientID = "admin-1"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

const (
	GarbageHousehold    = "household"
	GarbageHazardous    = "hazardous"
	GarbageConstruction = "construction"
	GarbageElectronic   = "electronic"
	GarbageOrganic      = "organic"
	GarbageRecyclable   = "recyclable"
	GarbageOther        = "other"
)

const (
	QuantitySmall  = "small"
	QuantityMedium = "medium"
	QuantityLarge  = "large"
)

const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldCheckbox = "checkbox"
)

// FilterAll in a status or garbage_type filter means "no filter".
const FilterAll = "all"

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

func ValidGarbageType(t string) bool {
	switch t {
	case GarbageHousehold, GarbageHazardous, GarbageConstruction,
		GarbageElectronic, GarbageOrganic, GarbageRecyclable, GarbageOther:
		return true
	}
	return false
}

func ValidQuantity(q string) bool {
	switch q {
	case QuantitySmall, QuantityMedium, QuantityLarge:
		return true
	}
	return false
}
