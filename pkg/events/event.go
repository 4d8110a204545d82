package events

import "time"

const (
	TypeVenueCreated = "VENUE_CREATED"
	TypeLeadCaptured = "LEAD_CAPTURED"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
