// FILE: internal/dto/lead_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CaptureLeadRequest is the public submission from the capture page. Phone and
// email are individually optional but at least one must be present; the
// service enforces that cross-field rule.
type CaptureLeadRequest struct {
	Name   string `json:"name" validate:"omitempty,max=120"`
	Phone  string `json:"phone" validate:"omitempty,max=32"`
	Email  string `json:"email" validate:"omitempty,email"`
	Source string `json:"source" validate:"omitempty,oneof=qr web manual"`
}

type LeadResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Source    string    `json:"source"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadListResponse struct {
	Leads []*LeadResponse `json:"leads"`
	Total int64           `json:"total"`
}

type UpdateLeadNotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}
