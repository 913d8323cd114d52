package store

import (
	"log"
	"time"

	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Demo accounts: user@demo.com and admin@demo.com, both with password
// "demo123". The credential set is fixed; there is no registration.
func DefaultUsers() []models.User {
	return []models.User{
		{
			ID:           "user-1",
			Name:         "John Doe",
			Email:        "user@demo.com",
			PasswordHash: hashPassword("demo123"),
			Role:         domain.RoleUser,
		},
		{
			ID:           domain.AdminRecipientID,
			Name:         "Admin User",
			Email:        "admin@demo.com",
			PasswordHash: hashPassword("demo123"),
			Role:         domain.RoleAdmin,
		},
	}
}

func hashPassword(pw string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed password hash: %v", err)
	}
	return string(hash)
}

func DefaultFormTypes() []models.FormType {
	return []models.FormType{
		{
			ID:          "form-1",
			Name:        "Overflow Details",
			Description: "Detailed information about garbage overflow",
			Fields: []models.FormField{
				{Name: "overflow_level", Type: domain.FieldSelect, Label: "Overflow Level", Options: []string{"25%", "50%", "75%", "100%"}, Required: true},
				{Name: "smell_intensity", Type: domain.FieldSelect, Label: "Smell Intensity", Options: []string{"None", "Mild", "Moderate", "Strong"}, Required: true},
				{Name: "blocking_path", Type: domain.FieldCheckbox, Label: "Is it blocking any pathway?"},
				{Name: "additional_notes", Type: domain.FieldTextarea, Label: "Additional Notes"},
			},
		},
		{
			ID:          "form-2",
			Name:        "Hazardous Waste Form",
			Description: "Report hazardous waste materials",
			Fields: []models.FormField{
				{Name: "waste_type", Type: domain.FieldSelect, Label: "Type of Hazardous Waste", Options: []string{"Chemical", "Medical", "Electronic", "Industrial", "Other"}, Required: true},
				{Name: "quantity_estimate", Type: domain.FieldText, Label: "Estimated Quantity (kg/liters)", Required: true},
				{Name: "container_condition", Type: domain.FieldSelect, Label: "Container Condition", Options: []string{"Intact", "Leaking", "Damaged", "No Container"}, Required: true},
				{Name: "immediate_danger", Type: domain.FieldCheckbox, Label: "Immediate danger to public?"},
				{Name: "description", Type: domain.FieldTextarea, Label: "Detailed Description", Required: true},
			},
		},
		{
			ID:          "form-3",
			Name:        "Large Item Disposal",
			Description: "Report large items needing special disposal",
			Fields: []models.FormField{
				{Name: "item_type", Type: domain.FieldSelect, Label: "Item Type", Options: []string{"Furniture", "Appliance", "Mattress", "Construction Debris", "Other"}, Required: true},
				{Name: "item_count", Type: domain.FieldText, Label: "Number of Items", Required: true},
				{Name: "needs_equipment", Type: domain.FieldCheckbox, Label: "Needs special equipment for removal?"},
				{Name: "access_notes", Type: domain.FieldTextarea, Label: "Access/Location Notes"},
			},
		},
	}
}

// Sample reports near San Francisco so a fresh install has data to triage.
func DefaultAlerts() []models.Alert {
	now := time.Now().UTC()
	form2 := "form-2"
	return []models.Alert{
		{
			ID:          "alert-1",
			UserID:      "user-1",
			Latitude:    37.7749,
			Longitude:   -122.4194,
			GarbageType: domain.GarbageHousehold,
			Quantity:    domain.QuantityLarge,
			Description: "Overflowing garbage bin near the park entrance",
			Status:      domain.StatusPending,
			CreatedAt:   now.Add(-2 * time.Hour),
			UpdatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "alert-2",
			UserID:      "user-1",
			Latitude:    37.7849,
			Longitude:   -122.4094,
			GarbageType: domain.GarbageHazardous,
			Quantity:    domain.QuantityMedium,
			Description: "Leaking chemical containers found behind warehouse",
			Status:      domain.StatusProcessing,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-6 * time.Hour),
			IsFormSent:  true,
			FormTypeID:  &form2,
		},
		{
			ID:          "alert-3",
			UserID:      "user-1",
			Latitude:    37.7649,
			Longitude:   -122.4294,
			GarbageType: domain.GarbageConstruction,
			Quantity:    domain.QuantitySmall,
			Description: "Construction debris left on sidewalk",
			Status:      domain.StatusCompleted,
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
	}
}

func DefaultMessages() []models.Message {
	now := time.Now().UTC()
	return []models.Message{
		{
			ID:         "msg-1",
			AlertID:    "alert-2",
			SenderID:   domain.AdminRecipientID,
			SenderRole: domain.RoleAdmin,
			Content:    "We have received your report about hazardous waste. Our team is investigating.",
			CreatedAt:  now.Add(-5 * time.Hour),
			IsRead:     true,
		},
		{
			ID:         "msg-2",
			AlertID:    "alert-2",
			SenderID:   "user-1",
			SenderRole: domain.RoleUser,
			Content:    "Thank you for the quick response. Please let me know if you need more details.",
			CreatedAt:  now.Add(-4 * time.Hour),
			IsRead:     true,
		},
	}
}

func DefaultNotifications() []models.Notification {
	now := time.Now().UTC()
	return []models.Notification{
		{
			ID:        "notif-2",
			UserID:    domain.AdminRecipientID,
			Title:     "New Alert Received",
			Body:      "A new waste report has been submitted.",
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID:        "notif-1",
			UserID:    "user-1",
			Title:     "Alert Status Updated",
			Body:      `Your alert has been updated to "processing".`,
			CreatedAt: now.Add(-6 * time.Hour),
		},
	}
}
