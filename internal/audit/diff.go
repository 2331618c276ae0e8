// Package audit decides which history rows a profile or skill mutation
// warrants. It is the single change-detection path: services compute diffs
// here and persist the resulting rows through the repositories.
package audit

import (
	"github.com/avkorablev/skills-tracker/internal/models"
)

// FieldChange describes one tracked profile field whose value differs from
// the stored snapshot.
type FieldChange struct {
	Field    string  // Human-readable field label
	Previous *string // Stored value, nil when the field was unset
	New      string  // Incoming value
}

// trackedField binds a profile field label to its accessors on the current
// snapshot and the incoming update.
type trackedField struct {
	label    string
	current  func(models.UserDB) *string
	incoming func(models.ProfileUpdate) *string
}

// Only these four fields produce ProfileHistory rows. First and last name
// are applied but not audited.
var trackedFields = []trackedField{
	{models.FieldRole, func(u models.UserDB) *string { return u.Role }, func(p models.ProfileUpdate) *string { return p.Role }},
	{models.FieldProjectName, func(u models.UserDB) *string { return u.ProjectName }, func(p models.ProfileUpdate) *string { return p.ProjectName }},
	{models.FieldClientName, func(u models.UserDB) *string { return u.ClientName }, func(p models.ProfileUpdate) *string { return p.ClientName }},
	{models.FieldLocation, func(u models.UserDB) *string { return u.Location }, func(p models.ProfileUpdate) *string { return p.Location }},
}

// deref normalizes a nullable column for comparison: nil compares equal to
// the empty string, so clearing an already-empty field is not a change.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ProfileChanges returns one FieldChange per tracked field that the update
// carries and whose value differs from the current snapshot. Fields absent
// from the update never participate.
func ProfileChanges(current models.UserDB, upd models.ProfileUpdate) []FieldChange {
	var changes []FieldChange
	for _, f := range trackedFields {
		in := f.incoming(upd)
		if in == nil {
			continue
		}
		prev := f.current(current)
		if deref(prev) == *in {
			continue
		}
		changes = append(changes, FieldChange{
			Field:    f.label,
			Previous: prev,
			New:      *in,
		})
	}
	return changes
}

// MergeProfile applies an update on top of the current snapshot, leaving
// absent fields untouched.
func MergeProfile(current models.UserDB, upd models.ProfileUpdate) models.UserDB {
	merged := current
	if upd.FirstName != nil {
		merged.FirstName = upd.FirstName
	}
	if upd.LastName != nil {
		merged.LastName = upd.LastName
	}
	if upd.ProjectName != nil {
		merged.ProjectName = upd.ProjectName
	}
	if upd.ClientName != nil {
		merged.ClientName = upd.ClientName
	}
	if upd.Role != nil {
		merged.Role = upd.Role
	}
	if upd.Location != nil {
		merged.Location = upd.Location
	}
	return merged
}

// MergeSkill applies an update on top of the stored skill. A nil update
// field falls back to the stored value.
func MergeSkill(existing models.SkillDB, upd models.SkillUpdate) models.SkillDB {
	merged := existing
	if upd.Name != nil {
		merged.Name = *upd.Name
	}
	if upd.Level != nil {
		merged.Level = *upd.Level
	}
	if upd.CertificationURL != nil {
		merged.CertificationURL = upd.CertificationURL
	}
	return merged
}

// SkillChanged reports whether an update warrants a history row: true when
// the merged level OR the merged certification URL differs from the stored
// skill. A name-only change never does.
func SkillChanged(existing models.SkillDB, upd models.SkillUpdate) bool {
	merged := MergeSkill(existing, upd)
	if merged.Level != existing.Level {
		return true
	}
	return deref(merged.CertificationURL) != deref(existing.CertificationURL)
}

// SkillSnapshot builds the history row mirroring a skill's current state.
func SkillSnapshot(skill models.SkillDB) models.SkillHistoryDB {
	return models.SkillHistoryDB{
		SkillID:          skill.SkillID,
		UserID:           skill.UserID,
		Name:             skill.Name,
		Level:            skill.Level,
		CertificationURL: skill.CertificationURL,
		UpdatedAt:        skill.UpdatedAt,
	}
}
