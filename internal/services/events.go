package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// AuditEventPublisher publishes history writes to the audit topic.
type AuditEventPublisher interface {
	PublishAuditEvent(ctx context.Context, event models.AuditEvent) error // Publishes one audit event
}

// newAuditEvent builds an event for a history row just written.
func newAuditEvent(userID uuid.UUID, entity string, entityID uuid.UUID, action string) models.AuditEvent {
	return models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Entity:    entity,
		EntityID:  entityID.String(),
		Action:    action,
	}
}

// publishAuditEvent publishes best-effort: a nil publisher skips, a failure
// is logged and never fails the mutation.
func publishAuditEvent(ctx context.Context, pub AuditEventPublisher, event models.AuditEvent) {
	if pub == nil {
		logger.Log.Warnw("audit publisher not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	if err := pub.PublishAuditEvent(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish audit event", "event_id", event.EventID, "action", event.Action, "error", err)
	} else {
		logger.Log.Infow("audit event published", "event_id", event.EventID, "action", event.Action)
	}
}
