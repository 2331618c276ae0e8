package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/models"
)

// UserResponse represents a user profile in API responses
// swagger:model UserResponse
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	ProjectName *string   `json:"projectName"`
	ClientName  *string   `json:"clientName"`
	Role        *string   `json:"role"`
	Location    *string   `json:"location"`
	AccessRole  string    `json:"accessRole"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newUserResponse(user models.UserDB) UserResponse {
	return UserResponse{
		ID:          user.UserID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		ProjectName: user.ProjectName,
		ClientName:  user.ClientName,
		Role:        user.Role,
		Location:    user.Location,
		AccessRole:  user.AccessRole,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// SkillResponse represents a skill in API responses
// swagger:model SkillResponse
type SkillResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Name             string    `json:"name"`
	Level            string    `json:"level"`
	CertificationURL *string   `json:"certificationUrl"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newSkillResponse(skill models.SkillDB) SkillResponse {
	return SkillResponse{
		ID:               skill.SkillID,
		UserID:           skill.UserID,
		Name:             skill.Name,
		Level:            skill.Level,
		CertificationURL: skill.CertificationURL,
		CreatedAt:        skill.CreatedAt,
		UpdatedAt:        skill.UpdatedAt,
	}
}

// SkillHistoryResponse represents one skill snapshot in API responses
// swagger:model SkillHistoryResponse
type SkillHistoryResponse struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skillId"`
	UserID           uuid.UUID `json:"userId"`
	Name             string    `json:"name"`
	Level            string    `json:"level"`
	CertificationURL *string   `json:"certificationUrl"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newSkillHistoryResponse(row models.SkillHistoryDB) SkillHistoryResponse {
	return SkillHistoryResponse{
		ID:               row.HistoryID,
		SkillID:          row.SkillID,
		UserID:           row.UserID,
		Name:             row.Name,
		Level:            row.Level,
		CertificationURL: row.CertificationURL,
		UpdatedAt:        row.UpdatedAt,
	}
}

// ProfileHistoryResponse represents one profile field change in API responses
// swagger:model ProfileHistoryResponse
type ProfileHistoryResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Field         string    `json:"field"`
	PreviousValue *string   `json:"previousValue"`
	NewValue      string    `json:"newValue"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newProfileHistoryResponse(row models.ProfileHistoryDB) ProfileHistoryResponse {
	return ProfileHistoryResponse{
		ID:            row.HistoryID,
		UserID:        row.UserID,
		Field:         row.Field,
		PreviousValue: row.PreviousValue,
		NewValue:      row.NewValue,
		UpdatedAt:     row.UpdatedAt,
	}
}

var validLevels = map[string]struct{}{
	models.LevelBeginner:     {},
	models.LevelIntermediate: {},
	models.LevelExpert:       {},
}
