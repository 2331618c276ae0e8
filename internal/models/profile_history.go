package models

import (
	"time"

	"github.com/google/uuid"
)

// Human-readable labels for the tracked profile fields
const (
	FieldRole        = "Role"
	FieldProjectName = "Project Name"
	FieldClientName  = "Client Name"
	FieldLocation    = "Location"
)

// ProfileHistoryDB records a single tracked-field change on a user profile.
// One row per changed field per update call; rows are append-only.
type ProfileHistoryDB struct {
	HistoryID     uuid.UUID `json:"history_id" db:"history_id"`         // Primary key
	UserID        uuid.UUID `json:"user_id" db:"user_id"`               // User whose profile changed
	Field         string    `json:"field" db:"field"`                   // Human-readable field label
	PreviousValue *string   `json:"previous_value" db:"previous_value"` // Value before the change, nil when unset
	NewValue      string    `json:"new_value" db:"new_value"`           // Value after the change
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`         // Change timestamp
}
