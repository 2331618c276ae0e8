package models

// Audit event actions
const (
	ActionSkillCreated   = "skill_created"
	ActionSkillUpdated   = "skill_updated"
	ActionProfileUpdated = "profile_updated"
)

// AuditEvent represents a history write published to the audit topic.
type AuditEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the history row was written.
	UserID    string `json:"user_id"`   // UserID is the identifier of the user the history row belongs to.
	Entity    string `json:"entity"`    // Entity names the audited entity kind, "skill" or "profile".
	EntityID  string `json:"entity_id"` // EntityID is the identifier of the audited entity.
	Action    string `json:"action"`    // Action describes the change, e.g. "skill_updated".
}
