// FILE: internal/dto/venue_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// VenueResponse is the dashboard view of the authenticated venue.
type VenueResponse struct {
	Id                 uuid.UUID `json:"id"`
	Slug               string    `json:"slug"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	WelcomeMessage     string    `json:"welcome_message,omitempty"`
	ThankYouMessage    string    `json:"thank_you_message,omitempty"`
	PrimaryColor       string    `json:"primary_color,omitempty"`
	PaymentProvider    string    `json:"payment_provider"`
	SubscriptionStatus string    `json:"subscription_status"`
	Active             bool      `json:"active"`
	HasMenu            bool      `json:"has_menu"`
	HasLogo            bool      `json:"has_logo"`
	CaptureURL         string    `json:"capture_url"`
	CreatedAt          time.Time `json:"created_at"`
}

type VenueSettingsRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Phone           *string `json:"phone,omitempty"`
	WelcomeMessage  *string `json:"welcome_message,omitempty" validate:"omitempty,max=500"`
	ThankYouMessage *string `json:"thank_you_message,omitempty" validate:"omitempty,max=500"`
	PrimaryColor    *string `json:"primary_color,omitempty" validate:"omitempty,hexcolor"`
}

// CapturePageResponse is the public view served to visitors at /c/:slug. It
// exposes nothing about billing beyond whether the page serves at all.
type CapturePageResponse struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	WelcomeMessage  string `json:"welcome_message,omitempty"`
	PrimaryColor    string `json:"primary_color,omitempty"`
	HasMenu         bool   `json:"has_menu"`
	HasLogo         bool   `json:"has_logo"`
	ThankYouMessage string `json:"thank_you_message,omitempty"`
}
