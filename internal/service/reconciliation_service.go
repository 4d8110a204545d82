// FILE: internal/service/reconciliation_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/pkg/logger"
	"qrcapture-be/internal/repository/unitofwork"
	"qrcapture-be/pkg/events"
	"qrcapture-be/pkg/payment/paypal"
	"qrcapture-be/pkg/utils"

	"github.com/google/uuid"
)

const (
	defaultVenueName = "My Venue"
	slugAttempts     = 5
	providerTimeout  = 10 * time.Second
)

// IReconciliationService converges local venue state onto the state the
// payment providers report. Every operation is safe to replay: a duplicate
// delivery converges to the same row, and an event for a subscription nobody
// owns is a silent no-op.
type IReconciliationService interface {
	CompleteStripeCheckout(ctx context.Context, checkout *dto.StripeCheckoutCompleted) (*entity.Venue, error)
	UpdateStripeSubscription(ctx context.Context, change *dto.StripeSubscriptionChange) error
	DeleteStripeSubscription(ctx context.Context, change *dto.StripeSubscriptionChange) error
	FailStripePayment(ctx context.Context, failed *dto.StripePaymentFailed) error
	CreateOrAttachPaypalSubscription(ctx context.Context, req *dto.PaypalCreateSubscriptionRequest) (*entity.Venue, error)
	HandlePaypalWebhook(ctx context.Context, event *dto.PaypalWebhookEvent) error
}

type reconciliationService struct {
	uowFactory   unitofwork.RepositoryFactory
	paypalClient paypal.IClient
	publisher    IEventPublisher
	log          logger.ILogger
}

func NewReconciliationService(
	uowFactory unitofwork.RepositoryFactory,
	paypalClient paypal.IClient,
	publisher IEventPublisher,
	log logger.ILogger,
) IReconciliationService {
	return &reconciliationService{
		uowFactory:   uowFactory,
		paypalClient: paypalClient,
		publisher:    publisher,
		log:          log,
	}
}

// CompleteStripeCheckout handles checkout.session.completed. The customer id
// is the idempotency key: a replayed delivery finds the venue it already
// created and returns it unchanged.
func (s *reconciliationService) CompleteStripeCheckout(ctx context.Context, checkout *dto.StripeCheckoutCompleted) (*entity.Venue, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	existing, err := uow.VenueRepository().FindByStripeCustomerId(ctx, checkout.CustomerId)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if existing != nil {
		uow.Rollback()
		s.log.Info("reconciliation", "stripe checkout replayed, venue exists", map[string]interface{}{
			"venue_id":    existing.Id,
			"customer_id": checkout.CustomerId,
		})
		return existing, nil
	}

	name := checkout.VenueName
	if name == "" {
		name = defaultVenueName
	}

	slug, err := s.uniqueSlug(ctx, uow)
	if err != nil {
		uow.Rollback()
		return nil, err
	}

	// A session without a subscription id (one-off payment mode) starts the
	// venue active; only real subscriptions begin in their trial window.
	status := entity.SubscriptionStatusActive
	var subscriptionId *string
	if checkout.SubscriptionId != "" {
		subscriptionId = &checkout.SubscriptionId
		status = entity.SubscriptionStatusTrialing
	}

	venue := &entity.Venue{
		Id:                   uuid.New(),
		Slug:                 slug,
		Name:                 name,
		Email:                checkout.CustomerEmail,
		PaymentProvider:      entity.PaymentProviderStripe,
		StripeCustomerId:     &checkout.CustomerId,
		StripeSubscriptionId: subscriptionId,
		SubscriptionStatus:   status,
		Active:               true,
	}

	if err := uow.VenueRepository().Create(ctx, venue); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.emitVenueCreated(ctx, venue)
	return venue, nil
}

// UpdateStripeSubscription handles customer.subscription.updated. An unknown
// subscription id means a stale or foreign event and is ignored. The status
// passes through as reported; only subscription deletion flips the serving
// flag.
func (s *reconciliationService) UpdateStripeSubscription(ctx context.Context, change *dto.StripeSubscriptionChange) error {
	return s.mutateVenue(ctx, func(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.Venue, error) {
		return uow.VenueRepository().FindByStripeSubscriptionId(ctx, change.SubscriptionId)
	}, func(venue *entity.Venue) {
		venue.SubscriptionStatus = entity.ParseSubscriptionStatus(change.Status)
	})
}

// DeleteStripeSubscription handles customer.subscription.deleted.
func (s *reconciliationService) DeleteStripeSubscription(ctx context.Context, change *dto.StripeSubscriptionChange) error {
	return s.mutateVenue(ctx, func(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.Venue, error) {
		return uow.VenueRepository().FindByStripeSubscriptionId(ctx, change.SubscriptionId)
	}, func(venue *entity.Venue) {
		venue.SubscriptionStatus = entity.SubscriptionStatusCanceled
		venue.Active = false
	})
}

// FailStripePayment handles invoice.payment_failed. The venue keeps serving
// until the subscription is actually canceled.
func (s *reconciliationService) FailStripePayment(ctx context.Context, failed *dto.StripePaymentFailed) error {
	return s.mutateVenue(ctx, func(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.Venue, error) {
		return uow.VenueRepository().FindByStripeCustomerId(ctx, failed.CustomerId)
	}, func(venue *entity.Venue) {
		venue.SubscriptionStatus = entity.SubscriptionStatusPastDue
	})
}

// CreateOrAttachPaypalSubscription resolves a frontend-reported PayPal
// subscription. The id is verified against PayPal first; nothing is persisted
// on an unverified subscription. Resolution is three-way: an already-known
// subscription id wins, then a venue with the same email is attached, then a
// fresh venue is created.
func (s *reconciliationService) CreateOrAttachPaypalSubscription(ctx context.Context, req *dto.PaypalCreateSubscriptionRequest) (*entity.Venue, error) {
	verifyCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	sub, err := s.paypalClient.GetSubscription(verifyCtx, req.SubscriptionId)
	if err != nil {
		s.log.Warn("reconciliation", "paypal verification failed", map[string]interface{}{
			"subscription_id": req.SubscriptionId,
			"error":           err.Error(),
		})
		return nil, err
	}

	email := req.Email
	if email == "" {
		email = sub.Subscriber.EmailAddress
	}
	email = strings.ToLower(strings.TrimSpace(email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	venues := uow.VenueRepository()

	existing, err := venues.FindByPaypalSubscriptionId(ctx, sub.ID)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if existing != nil {
		uow.Rollback()
		return existing, nil
	}

	status := entity.SubscriptionStatusActive
	if sub.Status == paypal.StatusApprovalPending || sub.Status == paypal.StatusActive {
		status = entity.SubscriptionStatusTrialing
	}

	if email != "" {
		byEmail, err := venues.FindByEmail(ctx, email)
		if err != nil {
			uow.Rollback()
			return nil, err
		}
		if byEmail != nil {
			byEmail.PaymentProvider = entity.PaymentProviderPaypal
			byEmail.PaypalSubscriptionId = &sub.ID
			byEmail.SubscriptionStatus = status
			if err := venues.Update(ctx, byEmail); err != nil {
				uow.Rollback()
				return nil, err
			}
			if err := uow.Commit(); err != nil {
				return nil, err
			}
			s.log.Info("reconciliation", "paypal subscription attached to existing venue", map[string]interface{}{
				"venue_id":        byEmail.Id,
				"subscription_id": sub.ID,
			})
			return byEmail, nil
		}
	}

	name := req.VenueName
	if name == "" {
		name = defaultVenueName
	}

	slug, err := s.uniqueSlug(ctx, uow)
	if err != nil {
		uow.Rollback()
		return nil, err
	}

	venue := &entity.Venue{
		Id:                   uuid.New(),
		Slug:                 slug,
		Name:                 name,
		Email:                email,
		PaymentProvider:      entity.PaymentProviderPaypal,
		PaypalSubscriptionId: &sub.ID,
		SubscriptionStatus:   entity.SubscriptionStatusTrialing,
		Active:               true,
	}

	if err := venues.Create(ctx, venue); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.emitVenueCreated(ctx, venue)
	return venue, nil
}

// HandlePaypalWebhook converges on asynchronous PayPal lifecycle events.
func (s *reconciliationService) HandlePaypalWebhook(ctx context.Context, event *dto.PaypalWebhookEvent) error {
	var apply func(*entity.Venue)

	switch event.EventType {
	case "BILLING.SUBSCRIPTION.ACTIVATED":
		apply = func(v *entity.Venue) {
			v.SubscriptionStatus = entity.SubscriptionStatusActive
		}
	case "BILLING.SUBSCRIPTION.CANCELLED":
		apply = func(v *entity.Venue) {
			v.SubscriptionStatus = entity.SubscriptionStatusCanceled
			v.Active = false
		}
	case "BILLING.SUBSCRIPTION.SUSPENDED":
		apply = func(v *entity.Venue) {
			v.SubscriptionStatus = entity.SubscriptionStatusPastDue
		}
	default:
		// PAYMENT.SALE.COMPLETED and anything unrecognized
		return nil
	}

	return s.mutateVenue(ctx, func(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.Venue, error) {
		return uow.VenueRepository().FindByPaypalSubscriptionId(ctx, event.Resource.Id)
	}, apply)
}

// mutateVenue is the shared read-modify-write transaction. A missing venue is
// a silent no-op so stale provider events never error the webhook endpoint.
func (s *reconciliationService) mutateVenue(
	ctx context.Context,
	find func(context.Context, unitofwork.UnitOfWork) (*entity.Venue, error),
	apply func(*entity.Venue),
) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	venue, err := find(ctx, uow)
	if err != nil {
		uow.Rollback()
		return err
	}
	if venue == nil {
		uow.Rollback()
		return nil
	}

	apply(venue)

	if err := uow.VenueRepository().Update(ctx, venue); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}

func (s *reconciliationService) uniqueSlug(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	for i := 0; i < slugAttempts; i++ {
		slug := utils.GenerateSlug()
		taken, err := uow.VenueRepository().FindBySlug(ctx, slug)
		if err != nil {
			return "", err
		}
		if taken == nil {
			return slug, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique slug after %d attempts", slugAttempts)
}

func (s *reconciliationService) emitVenueCreated(ctx context.Context, venue *entity.Venue) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, events.TypeVenueCreated, map[string]interface{}{
		"venue_id": venue.Id.String(),
	})
	if err != nil {
		s.log.Error("reconciliation", "failed to publish venue created event", map[string]interface{}{
			"venue_id": venue.Id,
			"error":    err.Error(),
		})
	}
}
