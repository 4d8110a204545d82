// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"qrcapture-be/internal/pkg/logger"
	"qrcapture-be/internal/pkg/mailer"
	"qrcapture-be/internal/repository/specification"
	"qrcapture-be/internal/repository/unitofwork"
	"qrcapture-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService drains the domain event topic and triggers email side
// effects. Email failures are logged and dropped; they never retry into the
// request path.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topic      string
	uowFactory unitofwork.RepositoryFactory
	mail       mailer.IEmailService
	baseURL    string
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topic string,
	uowFactory unitofwork.RepositoryFactory,
	mail mailer.IEmailService,
	baseURL string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topic:      topic,
		uowFactory: uowFactory,
		mail:       mail,
		baseURL:    baseURL,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topic)
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
	// Always ack: a malformed or failed event must not loop forever.
	defer msg.Ack()

	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("consumer", "failed to unmarshal event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	switch event.Type {
	case events.TypeVenueCreated:
		cs.handleVenueCreated(ctx, event)
	case events.TypeLeadCaptured:
		cs.handleLeadCaptured(ctx, event)
	default:
		cs.log.Warn("consumer", "unhandled event type", map[string]interface{}{
			"type": event.Type,
		})
	}
}

func (cs *consumerService) handleVenueCreated(ctx context.Context, event events.BaseEvent) {
	venueId, ok := eventUUID(event, "venue_id")
	if !ok {
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	venue, err := uow.VenueRepository().FindById(ctx, venueId)
	if err != nil || venue == nil {
		cs.log.Error("consumer", "venue lookup failed for welcome email", map[string]interface{}{
			"venue_id": venueId,
		})
		return
	}
	if venue.Email == "" {
		return
	}

	if err := cs.mail.SendWelcome(venue, cs.baseURL); err != nil {
		cs.log.Error("consumer", "welcome email failed", map[string]interface{}{
			"venue_id": venueId,
			"error":    err.Error(),
		})
	}
}

func (cs *consumerService) handleLeadCaptured(ctx context.Context, event events.BaseEvent) {
	leadId, ok := eventUUID(event, "lead_id")
	if !ok {
		return
	}
	venueId, ok := eventUUID(event, "venue_id")
	if !ok {
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	venue, err := uow.VenueRepository().FindById(ctx, venueId)
	if err != nil || venue == nil || venue.Email == "" {
		return
	}

	lead, err := uow.LeadRepository().FindOne(ctx, specification.ByID{ID: leadId})
	if err != nil || lead == nil {
		return
	}

	if err := cs.mail.SendLeadNotification(venue, lead); err != nil {
		cs.log.Error("consumer", "lead notification email failed", map[string]interface{}{
			"lead_id": leadId,
			"error":   err.Error(),
		})
	}
}

func eventUUID(event events.BaseEvent, key string) (uuid.UUID, bool) {
	raw, ok := event.Data[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
