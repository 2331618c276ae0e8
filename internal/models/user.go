package models

import (
	"time"

	"github.com/google/uuid"
)

// Access roles assigned to accounts
const (
	AccessRoleUser  = "user"
	AccessRoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Email        string    `json:"email" db:"email"`               // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password, never serialized
	FirstName    *string   `json:"first_name" db:"first_name"`     // Optional first name
	LastName     *string   `json:"last_name" db:"last_name"`       // Optional last name
	ProjectName  *string   `json:"project_name" db:"project_name"` // Current project assignment
	ClientName   *string   `json:"client_name" db:"client_name"`   // Current client assignment
	Role         *string   `json:"role" db:"role"`                 // Job role, e.g. "Engineer"
	Location     *string   `json:"location" db:"location"`         // Office location
	AccessRole   string    `json:"access_role" db:"access_role"`   // Account access role: user or admin
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// IsAdmin reports whether the account carries the admin access role.
func (u *UserDB) IsAdmin() bool {
	return u.AccessRole == AccessRoleAdmin
}

// ProfileUpdate carries the profile fields of a single update request.
// A nil field means the request did not include it; absent fields are
// never treated as "changed to null".
type ProfileUpdate struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	ProjectName *string `json:"project_name"`
	ClientName  *string `json:"client_name"`
	Role        *string `json:"role"`
	Location    *string `json:"location"`
}
