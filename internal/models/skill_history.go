package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillHistoryDB is an immutable snapshot of a skill at a point in time.
// Rows are append-only and never updated or deleted.
type SkillHistoryDB struct {
	HistoryID        uuid.UUID `json:"history_id" db:"history_id"`               // Primary key
	SkillID          uuid.UUID `json:"skill_id" db:"skill_id"`                   // Skill the snapshot belongs to
	UserID           uuid.UUID `json:"user_id" db:"user_id"`                     // Owner of the skill at snapshot time
	Name             string    `json:"name" db:"name"`                           // Skill name at snapshot time
	Level            string    `json:"level" db:"level"`                         // Proficiency level at snapshot time
	CertificationURL *string   `json:"certification_url" db:"certification_url"` // Certification link at snapshot time
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`               // Snapshot timestamp
}
