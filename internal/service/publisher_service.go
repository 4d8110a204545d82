// FILE: internal/service/publisher_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"qrcapture-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventsTopic is the single in-process topic all domain events flow through.
const EventsTopic = "domain.events"

type IEventPublisher interface {
	Publish(ctx context.Context, eventType string, data map[string]interface{}) error
}

type eventPublisher struct {
	pubSub *gochannel.GoChannel
	topic  string
}

func NewEventPublisher(pubSub *gochannel.GoChannel, topic string) IEventPublisher {
	return &eventPublisher{
		pubSub: pubSub,
		topic:  topic,
	}
}

func (p *eventPublisher) Publish(ctx context.Context, eventType string, data map[string]interface{}) error {
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(p.topic, msg)
}
