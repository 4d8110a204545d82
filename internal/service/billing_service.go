// FILE: internal/service/billing_service.go
package service

import (
	"context"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/repository/unitofwork"
	"qrcapture-be/pkg/payment/stripegw"

	"github.com/google/uuid"
)

// IBillingService covers the synchronous Stripe surface: starting a signup
// checkout and opening the billing portal. Webhook-driven state changes live
// in the reconciliation service.
type IBillingService interface {
	StartSignupCheckout(ctx context.Context, req *dto.SignupCheckoutRequest) (*dto.CheckoutSessionResponse, error)
	ConfirmSignup(ctx context.Context, sessionId string) (*dto.SignupConfirmResponse, error)
	BillingPortalURL(ctx context.Context, venueId uuid.UUID, returnURL string) (*dto.BillingPortalResponse, error)
}

type billingService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    stripegw.StripeGateway
	priceId    string
	baseURL    string
	enabled    bool
}

func NewBillingService(
	uowFactory unitofwork.RepositoryFactory,
	gateway stripegw.StripeGateway,
	priceId, baseURL string,
	enabled bool,
) IBillingService {
	return &billingService{
		uowFactory: uowFactory,
		gateway:    gateway,
		priceId:    priceId,
		baseURL:    baseURL,
		enabled:    enabled,
	}
}

func (s *billingService) StartSignupCheckout(ctx context.Context, req *dto.SignupCheckoutRequest) (*dto.CheckoutSessionResponse, error) {
	if !s.enabled {
		return nil, ErrBillingUnavailable
	}

	sess, err := s.gateway.CreateCheckoutSession(stripegw.CheckoutParams{
		PriceID:    s.priceId,
		VenueName:  req.VenueName,
		Email:      req.Email,
		SuccessURL: s.baseURL + "/signup/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/signup",
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutSessionResponse{
		CheckoutURL: sess.URL,
		SessionId:   sess.ID,
	}, nil
}

// ConfirmSignup resolves a completed checkout session to its venue. The venue
// is created by the webhook, which can land after the browser redirect, so a
// not-yet-ready answer is normal and the page polls.
func (s *billingService) ConfirmSignup(ctx context.Context, sessionId string) (*dto.SignupConfirmResponse, error) {
	if !s.enabled {
		return nil, ErrBillingUnavailable
	}

	sess, err := s.gateway.GetCheckoutSession(sessionId)
	if err != nil {
		return nil, err
	}
	if sess.Customer == nil || sess.Customer.ID == "" {
		return &dto.SignupConfirmResponse{Ready: false}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	venue, err := uow.VenueRepository().FindByStripeCustomerId(ctx, sess.Customer.ID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return &dto.SignupConfirmResponse{Ready: false}, nil
	}

	return &dto.SignupConfirmResponse{
		Ready: true,
		Venue: toVenueResponse(venue),
	}, nil
}

func (s *billingService) BillingPortalURL(ctx context.Context, venueId uuid.UUID, returnURL string) (*dto.BillingPortalResponse, error) {
	if !s.enabled {
		return nil, ErrBillingUnavailable
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	venue, err := uow.VenueRepository().FindById(ctx, venueId)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, ErrVenueNotFound
	}
	if venue.StripeCustomerId == nil {
		return nil, ErrNoBillingAccount
	}

	if returnURL == "" {
		returnURL = s.baseURL + "/dashboard"
	}

	url, err := s.gateway.CreateBillingPortalSession(*venue.StripeCustomerId, returnURL)
	if err != nil {
		return nil, err
	}
	return &dto.BillingPortalResponse{PortalURL: url}, nil
}
