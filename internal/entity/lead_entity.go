// FILE: internal/entity/lead_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type LeadSource string

const (
	LeadSourceQR     LeadSource = "qr"
	LeadSourceWeb    LeadSource = "web"
	LeadSourceManual LeadSource = "manual"
)

// Lead is a captured visitor contact record. It belongs to exactly one Venue
// and is immutable after creation except for Notes.
type Lead struct {
	Id      uuid.UUID
	VenueId uuid.UUID

	Phone string
	Email string
	Name  string

	Source    LeadSource
	Notes     string
	CreatedAt time.Time
}

// HasContact reports whether at least one contact channel is present.
func (l *Lead) HasContact() bool {
	return l.Phone != "" || l.Email != ""
}
