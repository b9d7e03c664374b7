package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-humanizer-be/internal/dto"
	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/unitofwork"
	adminEvents "ai-humanizer-be/pkg/admin/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process admin event topic, persists
// each event as an audit log row and forwards it to the external bus.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	publisher  adminEvents.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	publisher adminEvents.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AuditEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal admin event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	auditLog := &entity.AuditLog{
		Actor:      payload.Actor,
		Action:     payload.Action,
		EntityType: payload.EntityType,
		EntityId:   payload.EntityId,
		Details:    payload.Details,
		CreatedAt:  payload.OccurredAt,
	}

	if err := uow.AuditLogRepository().Create(ctx, auditLog); err != nil {
		log.Printf("[ERROR] Failed to persist audit log for %s: %v", payload.Action, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	// Forward to the external bus. Best effort; the publisher is
	// nil-tolerant and logs its own failures.
	if cs.publisher != nil {
		cs.publisher.PublishAdminEvent(ctx, payload)
	}

	msg.Ack()
}
