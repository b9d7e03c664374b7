package events

import (
	"context"
	"time"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/pkg/logger"
	pkgEvents "ai-humanizer-be/pkg/events"
	pkgNats "ai-humanizer-be/pkg/nats"
)

// Publisher abstracts outbound event publishing for admin operations
type Publisher interface {
	PublishAdminEvent(ctx context.Context, msg dto.AuditEventMessage)
}

// NatsPublisher implements Publisher using NATS JetStream. A nil inner
// publisher turns every publish into a no-op so local runs work
// without a broker.
type NatsPublisher struct {
	publisher *pkgNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pkgNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishAdminEvent emits the mutation event onto the admin stream
func (p *NatsPublisher) PublishAdminEvent(ctx context.Context, msg dto.AuditEventMessage) {
	if p.publisher == nil {
		return
	}

	occurredAt := msg.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	evt := pkgEvents.BaseEvent{
		Type: msg.Action,
		Data: map[string]interface{}{
			"actor":       msg.Actor,
			"entity_type": msg.EntityType,
			"entity_id":   msg.EntityId,
			"details":     msg.Details,
		},
		OccurredAt: occurredAt,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish admin event", map[string]interface{}{
			"action": msg.Action,
			"error":  err.Error(),
		})
	}
}
