package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/audit"
	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// ErrSkillNotFound is returned when the referenced skill is absent.
var ErrSkillNotFound = errors.New("skill not found")

// SkillReader defines read-only skill operations.
type SkillReader interface {
	GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error)
}

// SkillWriter defines skill write operations.
type SkillWriter interface {
	Insert(ctx context.Context, skill models.SkillDB) (*models.SkillDB, error)
	Update(ctx context.Context, skill models.SkillDB) (*models.SkillDB, error)
}

// SkillHistoryReader lists a skill's history.
type SkillHistoryReader interface {
	ListBySkillID(ctx context.Context, skillID uuid.UUID) ([]models.SkillHistoryDB, error)
}

// SkillHistoryWriter appends skill history rows.
type SkillHistoryWriter interface {
	Insert(ctx context.Context, snapshot models.SkillHistoryDB) (*models.SkillHistoryDB, error)
}

// SkillService sequences skill mutations and their history recording.
// Under TxMiddleware the whole sequence shares one transaction.
type SkillService struct {
	reader        SkillReader
	writer        SkillWriter
	historyReader SkillHistoryReader
	historyWriter SkillHistoryWriter
	events        AuditEventPublisher
}

// NewSkillService creates a new SkillService.
func NewSkillService(
	reader SkillReader,
	writer SkillWriter,
	historyReader SkillHistoryReader,
	historyWriter SkillHistoryWriter,
	events AuditEventPublisher,
) *SkillService {
	return &SkillService{
		reader:        reader,
		writer:        writer,
		historyReader: historyReader,
		historyWriter: historyWriter,
		events:        events,
	}
}

// CreateSkill inserts a new skill for its owner. Creation is itself a
// trackable event: exactly one history row mirroring the created skill is
// always written.
func (s *SkillService) CreateSkill(ctx context.Context, requesterID uuid.UUID, skill models.SkillDB) (*models.SkillDB, error) {
	if skill.UserID != requesterID {
		logger.Log.Warnw("skill create forbidden", "ownerID", skill.UserID, "requesterID", requesterID)
		return nil, ErrForbidden
	}

	created, err := s.writer.Insert(ctx, skill)
	if err != nil {
		logger.Log.Errorw("failed to insert skill", "userID", skill.UserID, "name", skill.Name, "error", err)
		return nil, err
	}

	if _, err := s.historyWriter.Insert(ctx, audit.SkillSnapshot(*created)); err != nil {
		logger.Log.Errorw("failed to write skill history", "skillID", created.SkillID, "error", err)
		return nil, err
	}

	publishAuditEvent(ctx, s.events, newAuditEvent(created.UserID, "skill", created.SkillID, models.ActionSkillCreated))

	return created, nil
}

// UpdateSkill applies an update on behalf of the requester. Only the owner
// may update. A level or certification change (independent OR) yields
// exactly one history row carrying the post-update values; a name-only
// change yields none.
func (s *SkillService) UpdateSkill(ctx context.Context, skillID, requesterID uuid.UUID, upd models.SkillUpdate) (*models.SkillDB, error) {
	existing, err := s.reader.GetByID(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to load skill for update", "skillID", skillID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrSkillNotFound
	}
	if existing.UserID != requesterID {
		logger.Log.Warnw("skill update forbidden", "skillID", skillID, "ownerID", existing.UserID, "requesterID", requesterID)
		return nil, ErrForbidden
	}

	changed := audit.SkillChanged(*existing, upd)
	merged := audit.MergeSkill(*existing, upd)

	if changed {
		if _, err := s.historyWriter.Insert(ctx, audit.SkillSnapshot(merged)); err != nil {
			logger.Log.Errorw("failed to write skill history", "skillID", skillID, "error", err)
			return nil, err
		}
	}

	updated, err := s.writer.Update(ctx, merged)
	if err != nil {
		logger.Log.Errorw("failed to update skill", "skillID", skillID, "error", err)
		return nil, err
	}

	if changed {
		publishAuditEvent(ctx, s.events, newAuditEvent(updated.UserID, "skill", updated.SkillID, models.ActionSkillUpdated))
	}

	return updated, nil
}

// ListSkills returns a user's skills.
func (s *SkillService) ListSkills(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error) {
	skills, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list skills", "userID", userID, "error", err)
		return nil, err
	}
	return skills, nil
}

// GetSkillHistory returns a skill's history, most recent first. Only the
// owner or an admin may read it.
func (s *SkillService) GetSkillHistory(ctx context.Context, skillID, requesterID uuid.UUID, admin bool) ([]models.SkillHistoryDB, error) {
	skill, err := s.reader.GetByID(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to load skill for history", "skillID", skillID, "error", err)
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}
	if skill.UserID != requesterID && !admin {
		logger.Log.Warnw("skill history forbidden", "skillID", skillID, "ownerID", skill.UserID, "requesterID", requesterID)
		return nil, ErrForbidden
	}

	history, err := s.historyReader.ListBySkillID(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to list skill history", "skillID", skillID, "error", err)
		return nil, err
	}
	return history, nil
}
