package contract

import (
	"context"

	"qrcapture-be/internal/entity"
)

type WebhookEventRepository interface {
	// Record inserts the event, ignoring the insert when the same
	// (provider, provider event id) pair was already recorded.
	Record(ctx context.Context, event *entity.WebhookEvent) error
	MarkProcessed(ctx context.Context, provider entity.PaymentProvider, providerEventId string, processingError string) error
}
