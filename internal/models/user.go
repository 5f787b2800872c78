package models

import "github.com/google/uuid"

// User is a board account. Admins may mutate the board; non-admin
// accounts (course teachers checking their rosters) are read-only.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	LoginEnabled bool      `json:"login_enabled"`
}
