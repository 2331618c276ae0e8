package services

import (
	"context"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// topSkillLimit caps the analytics top-skill list.
const topSkillLimit = 10

// AdminUserReader lists all users.
type AdminUserReader interface {
	ListAll(ctx context.Context) ([]models.UserDB, error)
}

// AdminSkillReader lists and aggregates all skills.
type AdminSkillReader interface {
	ListAll(ctx context.Context) ([]models.SkillDB, error)
	LevelCounts(ctx context.Context) (map[string]int, error)
	TopNames(ctx context.Context, limit int) ([]models.SkillNameCount, error)
}

// AdminService serves the admin browse and analytics views. Access control
// is a capability of the caller's claims, enforced at the routing layer.
type AdminService struct {
	users  AdminUserReader
	skills AdminSkillReader
}

// NewAdminService creates a new AdminService.
func NewAdminService(users AdminUserReader, skills AdminSkillReader) *AdminService {
	return &AdminService{
		users:  users,
		skills: skills,
	}
}

// ListUsers returns every user.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// ListSkills returns every skill.
func (s *AdminService) ListSkills(ctx context.Context) ([]models.SkillDB, error) {
	skills, err := s.skills.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list skills", "error", err)
		return nil, err
	}
	return skills, nil
}

// Analytics aggregates user and skill figures for the dashboard.
func (s *AdminService) Analytics(ctx context.Context) (*models.Analytics, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "error", err)
		return nil, err
	}

	skills, err := s.skills.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count skills", "error", err)
		return nil, err
	}

	levels, err := s.skills.LevelCounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate skill levels", "error", err)
		return nil, err
	}

	top, err := s.skills.TopNames(ctx, topSkillLimit)
	if err != nil {
		logger.Log.Errorw("failed to aggregate top skills", "error", err)
		return nil, err
	}

	return &models.Analytics{
		TotalUsers:    len(users),
		TotalSkills:   len(skills),
		SkillsByLevel: levels,
		TopSkills:     top,
	}, nil
}
