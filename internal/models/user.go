package models

import "time"

// User is a credential-store entry. Users are provisioned administratively
// (cmd/adduser) and are never deleted by the application itself.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // don’t expose hash
	CreatedAt    time.Time `json:"created_at"`
}
