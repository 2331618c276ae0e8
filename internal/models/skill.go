package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported proficiency levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"
)

// SkillDB represents a skill row in the database
type SkillDB struct {
	SkillID          uuid.UUID `json:"skill_id" db:"skill_id"`                   // Unique skill identifier
	UserID           uuid.UUID `json:"user_id" db:"user_id"`                     // Identifier of the skill's owner, immutable after creation
	Name             string    `json:"name" db:"name"`                           // Skill name, e.g. "Go"
	Level            string    `json:"level" db:"level"`                         // Proficiency level: Beginner, Intermediate or Expert
	CertificationURL *string   `json:"certification_url" db:"certification_url"` // Optional certification link
	CreatedAt        time.Time `json:"created_at" db:"created_at"`               // Timestamp when the skill was created
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`               // Timestamp of the last skill update
}

// SkillUpdate carries the skill fields of a single update request.
// A nil field falls back to the stored value.
type SkillUpdate struct {
	Name             *string `json:"name"`
	Level            *string `json:"level"`
	CertificationURL *string `json:"certification_url"`
}
