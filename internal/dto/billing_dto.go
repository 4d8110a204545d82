// FILE: internal/dto/billing_dto.go
package dto

// SignupCheckoutRequest starts a Stripe checkout for a new venue.
type SignupCheckoutRequest struct {
	VenueName string `json:"venue_name" validate:"required,min=2,max=120"`
	Email     string `json:"email" validate:"required,email"`
}

type CheckoutSessionResponse struct {
	CheckoutURL string `json:"checkout_url"`
	SessionId   string `json:"session_id"`
}

// PaypalCreateSubscriptionRequest is posted by the frontend after PayPal's
// button flow approves a subscription. The subscription id is re-verified
// against PayPal before anything is persisted.
type PaypalCreateSubscriptionRequest struct {
	SubscriptionId string `json:"subscription_id" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	VenueName      string `json:"venue_name" validate:"omitempty,max=120"`
}

type PaypalCreateSubscriptionResponse struct {
	VenueId    string `json:"venue_id"`
	Slug       string `json:"slug"`
	CaptureURL string `json:"capture_url"`
	Status     string `json:"status"`
}

// SignupConfirmResponse is polled by the signup success page. Ready is false
// until the checkout webhook has landed and the venue row exists.
type SignupConfirmResponse struct {
	Ready bool           `json:"ready"`
	Venue *VenueResponse `json:"venue,omitempty"`
}

type BillingPortalResponse struct {
	PortalURL string `json:"portal_url"`
}

// WebhookAck is the body every webhook endpoint returns on acceptance.
type WebhookAck struct {
	Received bool `json:"received"`
}

// StripeCheckoutCompleted carries the fields the reconciliation engine needs
// from a checkout.session.completed event. The controller decodes the raw
// Stripe payload into this so the engine never touches the SDK types.
type StripeCheckoutCompleted struct {
	EventId        string
	CustomerId     string
	SubscriptionId string
	CustomerEmail  string
	VenueName      string
}

// StripeSubscriptionChange carries the fields shared by the
// customer.subscription.updated / .deleted events.
type StripeSubscriptionChange struct {
	EventId        string
	SubscriptionId string
	CustomerId     string
	Status         string
}

// StripePaymentFailed carries the customer id off an invoice.payment_failed
// event.
type StripePaymentFailed struct {
	EventId    string
	CustomerId string
}

// PaypalWebhookEvent is the decoded shape of a PayPal billing webhook. The
// resource is a subscription object for the BILLING.SUBSCRIPTION.* family.
type PaypalWebhookEvent struct {
	Id           string `json:"id"`
	EventType    string `json:"event_type"`
	ResourceType string `json:"resource_type"`
	Resource     struct {
		Id     string `json:"id"`
		Status string `json:"status"`
	} `json:"resource"`
}
