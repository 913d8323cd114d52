package models

// User is one of the two seeded demo accounts. Not persisted to the blob
// store; the credential set is fixed reference data.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // user, admin
}
