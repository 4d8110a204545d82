// FILE: internal/entity/webhook_event_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebhookEvent is an audit record of a delivered provider webhook. The
// (provider, provider event id) pair is unique so replayed deliveries are
// visible without being double-recorded. Recording is best-effort and never
// blocks reconciliation.
type WebhookEvent struct {
	Id              uuid.UUID
	Provider        PaymentProvider
	ProviderEventId string
	EventType       string
	PayloadJSON     string
	SignatureValid  bool
	ProcessedAt     *time.Time
	ProcessingError string
	CreatedAt       time.Time
}
