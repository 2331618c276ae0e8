package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/models"
)

// MemoryStore is an in-memory implementation of every repository contract,
// used by service tests in place of Postgres. Per-entity views returned by
// Users, Skills, SkillHistory, ProfileHistory and Suggestions share one
// state and carry the same method sets as the sqlx repositories, honoring
// the identical pre/post-conditions: no hard deletes, updates of missing
// ids return sql.ErrNoRows, history listings come back most recent first,
// and history rows are recorded exactly like the durable store records
// them.
//
// All methods serialize on one mutex, so each store call is atomic, but two
// interleaved read-diff-write sequences still race like two uncoordinated
// transactions would.
type MemoryStore struct {
	mu sync.Mutex

	users          map[uuid.UUID]models.UserDB
	skills         map[uuid.UUID]models.SkillDB
	skillHistory   []models.SkillHistoryDB
	profileHistory []models.ProfileHistoryDB
	clock          func() time.Time
}

// NewMemoryStore creates an empty MemoryStore using the wall clock.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[uuid.UUID]models.UserDB),
		skills: make(map[uuid.UUID]models.SkillDB),
		clock:  time.Now,
	}
}

// SetClock replaces the time source, for tests needing fixed timestamps.
func (s *MemoryStore) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// PromoteToAdmin flips a user's access role, for tests exercising admin paths.
func (s *MemoryStore) PromoteToAdmin(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[userID]; ok {
		user.AccessRole = models.AccessRoleAdmin
		s.users[userID] = user
	}
}

// Users returns the user view of the store.
func (s *MemoryStore) Users() *MemoryUserStore { return &MemoryUserStore{s: s} }

// Skills returns the skill view of the store.
func (s *MemoryStore) Skills() *MemorySkillStore { return &MemorySkillStore{s: s} }

// SkillHistory returns the skill history view of the store.
func (s *MemoryStore) SkillHistory() *MemorySkillHistoryStore { return &MemorySkillHistoryStore{s: s} }

// ProfileHistory returns the profile history view of the store.
func (s *MemoryStore) ProfileHistory() *MemoryProfileHistoryStore {
	return &MemoryProfileHistoryStore{s: s}
}

// Suggestions returns the suggestion view of the store.
func (s *MemoryStore) Suggestions() *MemorySuggestionStore { return &MemorySuggestionStore{s: s} }

// MemoryUserStore mirrors UserReadRepository and UserWriteRepository.
type MemoryUserStore struct {
	s *MemoryStore
}

// GetByID returns a user by primary key. Returns nil when absent.
func (m *MemoryUserStore) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	user, ok := m.s.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByEmail returns a user by email. Returns nil when absent.
func (m *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for _, user := range m.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// ListAll returns every user, newest first.
func (m *MemoryUserStore) ListAll(ctx context.Context) ([]models.UserDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	users := make([]models.UserDB, 0, len(m.s.users))
	for _, user := range m.s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

// Save inserts a new user with only email and password hash set.
func (m *MemoryUserStore) Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for _, user := range m.s.users {
		if user.Email == email {
			return nil, fmt.Errorf("duplicate email %q", email)
		}
	}

	now := m.s.clock()
	user := models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		AccessRole:   models.AccessRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.s.users[user.UserID] = user
	return &user, nil
}

// Update overwrites the mutable profile columns with the merged snapshot.
func (m *MemoryUserStore) Update(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	stored, ok := m.s.users[user.UserID]
	if !ok {
		return nil, sql.ErrNoRows
	}

	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.ProjectName = user.ProjectName
	stored.ClientName = user.ClientName
	stored.Role = user.Role
	stored.Location = user.Location
	stored.UpdatedAt = m.s.clock()

	m.s.users[stored.UserID] = stored
	return &stored, nil
}

// MemorySkillStore mirrors SkillReadRepository and SkillWriteRepository.
type MemorySkillStore struct {
	s *MemoryStore
}

// GetByID returns a skill by primary key. Returns nil when absent.
func (m *MemorySkillStore) GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	skill, ok := m.s.skills[skillID]
	if !ok {
		return nil, nil
	}
	return &skill, nil
}

// ListByUserID returns all skills owned by a user, name ascending.
func (m *MemorySkillStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	skills := make([]models.SkillDB, 0)
	for _, skill := range m.s.skills {
		if skill.UserID == userID {
			skills = append(skills, skill)
		}
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// ListAll returns every skill, newest first.
func (m *MemorySkillStore) ListAll(ctx context.Context) ([]models.SkillDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	skills := make([]models.SkillDB, 0, len(m.s.skills))
	for _, skill := range m.s.skills {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].UpdatedAt.After(skills[j].UpdatedAt) })
	return skills, nil
}

// LevelCounts returns the number of skills per proficiency level.
func (m *MemorySkillStore) LevelCounts(ctx context.Context) (map[string]int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	counts := make(map[string]int)
	for _, skill := range m.s.skills {
		counts[skill.Level]++
	}
	return counts, nil
}

// TopNames returns the most recorded skill names, descending by count.
func (m *MemorySkillStore) TopNames(ctx context.Context, limit int) ([]models.SkillNameCount, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	byName := make(map[string]int)
	for _, skill := range m.s.skills {
		byName[skill.Name]++
	}

	names := make([]models.SkillNameCount, 0, len(byName))
	for name, count := range byName {
		names = append(names, models.SkillNameCount{Name: name, Count: count})
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i].Count != names[j].Count {
			return names[i].Count > names[j].Count
		}
		return names[i].Name < names[j].Name
	})

	if limit < len(names) {
		names = names[:limit]
	}
	return names, nil
}

// Insert creates a new skill row.
func (m *MemorySkillStore) Insert(ctx context.Context, skill models.SkillDB) (*models.SkillDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	now := m.s.clock()
	skill.SkillID = uuid.New()
	skill.CreatedAt = now
	skill.UpdatedAt = now
	m.s.skills[skill.SkillID] = skill
	return &skill, nil
}

// Update overwrites the mutable skill columns with the merged snapshot.
func (m *MemorySkillStore) Update(ctx context.Context, skill models.SkillDB) (*models.SkillDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	stored, ok := m.s.skills[skill.SkillID]
	if !ok {
		return nil, sql.ErrNoRows
	}

	stored.Name = skill.Name
	stored.Level = skill.Level
	stored.CertificationURL = skill.CertificationURL
	stored.UpdatedAt = m.s.clock()

	m.s.skills[stored.SkillID] = stored
	return &stored, nil
}

// MemorySkillHistoryStore mirrors the skill history repositories.
type MemorySkillHistoryStore struct {
	s *MemoryStore
}

// ListBySkillID returns a skill's history, most recent first.
func (m *MemorySkillHistoryStore) ListBySkillID(ctx context.Context, skillID uuid.UUID) ([]models.SkillHistoryDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	// Rows are appended chronologically; walk backwards for descending order.
	history := make([]models.SkillHistoryDB, 0)
	for i := len(m.s.skillHistory) - 1; i >= 0; i-- {
		if m.s.skillHistory[i].SkillID == skillID {
			history = append(history, m.s.skillHistory[i])
		}
	}
	return history, nil
}

// Insert appends one snapshot row.
func (m *MemorySkillHistoryStore) Insert(ctx context.Context, snapshot models.SkillHistoryDB) (*models.SkillHistoryDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	snapshot.HistoryID = uuid.New()
	snapshot.UpdatedAt = m.s.clock()
	m.s.skillHistory = append(m.s.skillHistory, snapshot)
	return &snapshot, nil
}

// MemoryProfileHistoryStore mirrors the profile history repositories.
type MemoryProfileHistoryStore struct {
	s *MemoryStore
}

// ListByUserID returns a user's profile changes, most recent first.
func (m *MemoryProfileHistoryStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistoryDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	history := make([]models.ProfileHistoryDB, 0)
	for i := len(m.s.profileHistory) - 1; i >= 0; i-- {
		if m.s.profileHistory[i].UserID == userID {
			history = append(history, m.s.profileHistory[i])
		}
	}
	return history, nil
}

// Insert appends one field-change row.
func (m *MemoryProfileHistoryStore) Insert(ctx context.Context, row models.ProfileHistoryDB) (*models.ProfileHistoryDB, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	row.HistoryID = uuid.New()
	row.UpdatedAt = m.s.clock()
	m.s.profileHistory = append(m.s.profileHistory, row)
	return &row, nil
}

// MemorySuggestionStore mirrors SuggestionReadRepository.
type MemorySuggestionStore struct {
	s *MemoryStore
}

// DistinctProfileValues returns the distinct non-empty values of one
// tracked user column, sorted ascending.
func (m *MemorySuggestionStore) DistinctProfileValues(ctx context.Context, column string) ([]string, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	accessor, ok := map[string]func(models.UserDB) *string{
		"role":         func(u models.UserDB) *string { return u.Role },
		"project_name": func(u models.UserDB) *string { return u.ProjectName },
		"client_name":  func(u models.UserDB) *string { return u.ClientName },
		"location":     func(u models.UserDB) *string { return u.Location },
	}[column]
	if !ok {
		return nil, fmt.Errorf("column %q is not a suggestion source", column)
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, user := range m.s.users {
		v := accessor(user)
		if v == nil || *v == "" {
			continue
		}
		if _, dup := seen[*v]; dup {
			continue
		}
		seen[*v] = struct{}{}
		values = append(values, *v)
	}
	sort.Strings(values)
	return values, nil
}

// DistinctSkillNames returns the distinct skill names, sorted ascending.
func (m *MemorySuggestionStore) DistinctSkillNames(ctx context.Context) ([]string, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, skill := range m.s.skills {
		if _, dup := seen[skill.Name]; dup {
			continue
		}
		seen[skill.Name] = struct{}{}
		names = append(names, skill.Name)
	}
	sort.Strings(names)
	return names, nil
}
