// Package stripegw wraps the Stripe SDK operations the billing layer needs.
// Keeping the SDK behind an interface keeps the reconciliation engine and the
// controllers testable without Stripe credentials.
package stripegw

import (
	stripe "github.com/stripe/stripe-go/v72"
	portalsession "github.com/stripe/stripe-go/v72/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/webhook"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

type CheckoutParams struct {
	PriceID    string
	VenueName  string
	Email      string
	SuccessURL string
	CancelURL  string
}

type StripeGateway interface {
	CreateCheckoutSession(p CheckoutParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(id string) (*stripe.CheckoutSession, error)
	CreateBillingPortalSession(customerId, returnURL string) (string, error)
	ConstructWebhookEvent(payload []byte, sigHeader, secret string) (stripe.Event, error)
}

// client is the Stripe SDK-backed implementation of the gateway.
type client struct{}

// New returns a StripeGateway backed by the official Stripe SDK.
func New() StripeGateway { return client{} }

func (client) CreateCheckoutSession(p CheckoutParams) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(p.SuccessURL),
		CancelURL:     stripe.String(p.CancelURL),
		CustomerEmail: stripe.String(p.Email),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(7),
		},
	}
	// Venue identity rides along in metadata; the webhook handler reads it
	// back when the session completes.
	params.AddMetadata("venue_name", p.VenueName)
	params.AddMetadata("email", p.Email)

	return checkoutsession.New(params)
}

func (client) GetCheckoutSession(id string) (*stripe.CheckoutSession, error) {
	return checkoutsession.Get(id, nil)
}

func (client) CreateBillingPortalSession(customerId, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerId),
		ReturnURL: stripe.String(returnURL),
	}
	s, err := portalsession.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}

func (client) ConstructWebhookEvent(payload []byte, sigHeader, secret string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, secret)
}
