// FILE: internal/entity/venue_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentProvider string
type SubscriptionStatus string

const (
	PaymentProviderStripe PaymentProvider = "stripe"
	PaymentProviderPaypal PaymentProvider = "paypal"
	PaymentProviderManual PaymentProvider = "manual"

	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	// SubscriptionStatusUnknown is the fallback for provider-reported states
	// that are not part of the local state machine. Stored instead of the raw
	// string so the column stays a closed set.
	SubscriptionStatusUnknown SubscriptionStatus = "unknown"
)

// ParseSubscriptionStatus maps a provider-reported status string onto the
// local enum. Unrecognized values collapse to unknown rather than being
// stored verbatim.
func ParseSubscriptionStatus(raw string) SubscriptionStatus {
	switch SubscriptionStatus(raw) {
	case SubscriptionStatusTrialing, SubscriptionStatusActive,
		SubscriptionStatusPastDue, SubscriptionStatusCanceled:
		return SubscriptionStatus(raw)
	default:
		return SubscriptionStatusUnknown
	}
}

// Grants reports whether the status allows the venue's capture page to serve.
func (s SubscriptionStatus) Grants() bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusTrialing
}

// Venue is a tenant business account with its own capture page and billing
// identity. It is addressable by id, by slug, by (provider, subscription id)
// and, for dedup, by lowercased email. Venues are never hard-deleted; a
// canceled venue keeps its row with Active=false.
type Venue struct {
	Id   uuid.UUID
	Slug string

	Name  string
	Email string
	Phone string

	WelcomeMessage  string
	ThankYouMessage string
	PrimaryColor    string

	LogoData        []byte
	LogoFilename    string
	LogoContentType string

	MenuData        []byte
	MenuFilename    string
	MenuContentType string

	PaymentProvider      PaymentProvider
	StripeCustomerId     *string
	StripeSubscriptionId *string
	PaypalSubscriptionId *string
	SubscriptionStatus   SubscriptionStatus

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v *Venue) CaptureURL() string {
	return "/c/" + v.Slug
}

func (v *Venue) HasMenu() bool {
	return len(v.MenuData) > 0
}

func (v *Venue) HasLogo() bool {
	return len(v.LogoData) > 0
}
