package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/audit"
	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

var (
	// ErrForbidden is returned when the requester does not own the entity
	// being mutated.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is returned when the referenced user is absent.
	ErrUserNotFound = errors.New("user not found")
)

// ProfileUserReader defines read-only user operations for profiles.
type ProfileUserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileUserWriter defines user write operations for profiles.
type ProfileUserWriter interface {
	Update(ctx context.Context, user models.UserDB) (*models.UserDB, error)
}

// ProfileHistoryReader lists a user's profile history.
type ProfileHistoryReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistoryDB, error)
}

// ProfileHistoryWriter appends profile history rows.
type ProfileHistoryWriter interface {
	Insert(ctx context.Context, row models.ProfileHistoryDB) (*models.ProfileHistoryDB, error)
}

// ProfileService sequences one profile mutation: fetch current snapshot,
// compute tracked-field deltas, write history rows, then apply the update.
// Under TxMiddleware the whole sequence shares one transaction.
type ProfileService struct {
	reader        ProfileUserReader
	writer        ProfileUserWriter
	historyReader ProfileHistoryReader
	historyWriter ProfileHistoryWriter
	events        AuditEventPublisher
}

// NewProfileService creates a new ProfileService.
func NewProfileService(
	reader ProfileUserReader,
	writer ProfileUserWriter,
	historyReader ProfileHistoryReader,
	historyWriter ProfileHistoryWriter,
	events AuditEventPublisher,
) *ProfileService {
	return &ProfileService{
		reader:        reader,
		writer:        writer,
		historyReader: historyReader,
		historyWriter: historyWriter,
		events:        events,
	}
}

// GetProfile returns a user's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a profile update on behalf of the requester. Only
// the owner may update. One ProfileHistory row is written per tracked field
// whose value actually changed, before the user row itself is updated. A
// request that changes nothing succeeds without any write.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID, requesterID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error) {
	if userID != requesterID {
		logger.Log.Warnw("profile update forbidden", "userID", userID, "requesterID", requesterID)
		return nil, ErrForbidden
	}

	current, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for update", "userID", userID, "error", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrUserNotFound
	}

	changes := audit.ProfileChanges(*current, upd)
	merged := audit.MergeProfile(*current, upd)

	if len(changes) == 0 && profileEqual(*current, merged) {
		return current, nil
	}

	for _, change := range changes {
		row := models.ProfileHistoryDB{
			UserID:        userID,
			Field:         change.Field,
			PreviousValue: change.Previous,
			NewValue:      change.New,
		}
		if _, err := s.historyWriter.Insert(ctx, row); err != nil {
			logger.Log.Errorw("failed to write profile history", "userID", userID, "field", change.Field, "error", err)
			return nil, err
		}
	}

	updated, err := s.writer.Update(ctx, merged)
	if err != nil {
		logger.Log.Errorw("failed to update user", "userID", userID, "error", err)
		return nil, err
	}

	for range changes {
		publishAuditEvent(ctx, s.events, newAuditEvent(userID, "profile", userID, models.ActionProfileUpdated))
	}

	return updated, nil
}

// GetProfileHistory returns the requester's own profile changes, most
// recent first.
func (s *ProfileService) GetProfileHistory(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistoryDB, error) {
	history, err := s.historyReader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list profile history", "userID", userID, "error", err)
		return nil, err
	}
	return history, nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// profileEqual compares the six mutable profile fields value-wise, with nil
// equal to the empty string.
func profileEqual(a, b models.UserDB) bool {
	return strValue(a.FirstName) == strValue(b.FirstName) &&
		strValue(a.LastName) == strValue(b.LastName) &&
		strValue(a.ProjectName) == strValue(b.ProjectName) &&
		strValue(a.ClientName) == strValue(b.ClientName) &&
		strValue(a.Role) == strValue(b.Role) &&
		strValue(a.Location) == strValue(b.Location)
}
