// FILE: internal/service/reconciliation_service_test.go
package service

import (
	"context"
	"testing"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/entity"
	"qrcapture-be/pkg/events"
	"qrcapture-be/pkg/payment/paypal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaypalClient struct {
	sub *paypal.Subscription
	err error
}

func (c *fakePaypalClient) GetSubscription(ctx context.Context, subscriptionId string) (*paypal.Subscription, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.sub, nil
}

func newTestEngine(store *fakeStore, pp paypal.IClient) (IReconciliationService, *recordingPublisher) {
	pub := &recordingPublisher{}
	svc := NewReconciliationService(&fakeFactory{store: store}, pp, pub, nopLogger{})
	return svc, pub
}

func strPtr(s string) *string { return &s }

func seedVenue(store *fakeStore, mutate func(*entity.Venue)) *entity.Venue {
	v := &entity.Venue{
		Id:                 uuid.New(),
		Slug:               "seed1234",
		Name:               "Seed Venue",
		Email:              "owner@example.com",
		PaymentProvider:    entity.PaymentProviderStripe,
		SubscriptionStatus: entity.SubscriptionStatusActive,
		Active:             true,
	}
	if mutate != nil {
		mutate(v)
	}
	store.addVenue(v)
	return v
}

func TestCompleteStripeCheckoutCreatesVenue(t *testing.T) {
	store := newFakeStore()
	svc, pub := newTestEngine(store, nil)

	venue, err := svc.CompleteStripeCheckout(context.Background(), &dto.StripeCheckoutCompleted{
		CustomerId:     "cus_123",
		SubscriptionId: "sub_123",
		CustomerEmail:  "new@example.com",
		VenueName:      "Cafe Nine",
	})
	require.NoError(t, err)
	require.NotNil(t, venue)

	assert.Equal(t, "Cafe Nine", venue.Name)
	assert.Equal(t, entity.PaymentProviderStripe, venue.PaymentProvider)
	assert.Equal(t, entity.SubscriptionStatusTrialing, venue.SubscriptionStatus)
	assert.True(t, venue.Active)
	assert.Len(t, venue.Slug, 8)
	require.NotNil(t, venue.StripeCustomerId)
	assert.Equal(t, "cus_123", *venue.StripeCustomerId)

	assert.Equal(t, []string{events.TypeVenueCreated}, pub.published())
}

func TestCompleteStripeCheckoutReplayIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc, pub := newTestEngine(store, nil)

	checkout := &dto.StripeCheckoutCompleted{
		CustomerId:     "cus_replay",
		SubscriptionId: "sub_replay",
		CustomerEmail:  "replay@example.com",
		VenueName:      "Replay Bar",
	}

	first, err := svc.CompleteStripeCheckout(context.Background(), checkout)
	require.NoError(t, err)

	second, err := svc.CompleteStripeCheckout(context.Background(), checkout)
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, 1, store.venueCount())
	assert.Len(t, pub.published(), 1, "replay must not emit a second creation event")
}

func TestCompleteStripeCheckoutDefaultsVenueName(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestEngine(store, nil)

	venue, err := svc.CompleteStripeCheckout(context.Background(), &dto.StripeCheckoutCompleted{
		CustomerId:     "cus_noname",
		SubscriptionId: "sub_noname",
		CustomerEmail:  "noname@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, defaultVenueName, venue.Name)
}

func TestCompleteStripeCheckoutWithoutSubscriptionIsActive(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestEngine(store, nil)

	venue, err := svc.CompleteStripeCheckout(context.Background(), &dto.StripeCheckoutCompleted{
		CustomerId:    "cus_onetime",
		CustomerEmail: "onetime@example.com",
		VenueName:     "One Shot Bar",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionStatusActive, venue.SubscriptionStatus)
	assert.Nil(t, venue.StripeSubscriptionId, "no subscription id must store a null, not an empty string")
	assert.True(t, venue.Active)
}

func TestUpdateStripeSubscriptionStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		wantStatus entity.SubscriptionStatus
	}{
		{"active", "active", entity.SubscriptionStatusActive},
		{"trialing", "trialing", entity.SubscriptionStatusTrialing},
		{"canceled", "canceled", entity.SubscriptionStatusCanceled},
		{"past_due", "past_due", entity.SubscriptionStatusPastDue},
		{"unrecognized collapses to unknown", "incomplete_expired", entity.SubscriptionStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			seeded := seedVenue(store, func(v *entity.Venue) {
				v.StripeSubscriptionId = strPtr("sub_map")
			})
			svc, _ := newTestEngine(store, nil)

			err := svc.UpdateStripeSubscription(context.Background(), &dto.StripeSubscriptionChange{
				SubscriptionId: "sub_map",
				Status:         tt.provider,
			})
			require.NoError(t, err)

			got := store.venue(seeded.Id)
			assert.Equal(t, tt.wantStatus, got.SubscriptionStatus)
			assert.True(t, got.Active, "status updates pass through without touching the serving flag")
		})
	}
}

func TestUpdateStripeSubscriptionDoesNotTouchServingFlag(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, func(v *entity.Venue) {
		v.StripeSubscriptionId = strPtr("sub_off")
		v.Active = false
		v.SubscriptionStatus = entity.SubscriptionStatusCanceled
	})
	svc, _ := newTestEngine(store, nil)

	err := svc.UpdateStripeSubscription(context.Background(), &dto.StripeSubscriptionChange{
		SubscriptionId: "sub_off",
		Status:         "active",
	})
	require.NoError(t, err)

	got := store.venue(seeded.Id)
	assert.Equal(t, entity.SubscriptionStatusActive, got.SubscriptionStatus)
	assert.False(t, got.Active, "a status update must not resurrect a deactivated venue")
}

func TestUpdateStripeSubscriptionUnknownSubIsNoOp(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, func(v *entity.Venue) {
		v.StripeSubscriptionId = strPtr("sub_other")
	})
	svc, _ := newTestEngine(store, nil)

	err := svc.UpdateStripeSubscription(context.Background(), &dto.StripeSubscriptionChange{
		SubscriptionId: "sub_nobody_owns",
		Status:         "canceled",
	})
	require.NoError(t, err)

	got := store.venue(seeded.Id)
	assert.Equal(t, entity.SubscriptionStatusActive, got.SubscriptionStatus)
	assert.True(t, got.Active)
}

func TestDeleteStripeSubscription(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, func(v *entity.Venue) {
		v.StripeSubscriptionId = strPtr("sub_del")
	})
	svc, _ := newTestEngine(store, nil)

	err := svc.DeleteStripeSubscription(context.Background(), &dto.StripeSubscriptionChange{
		SubscriptionId: "sub_del",
	})
	require.NoError(t, err)

	got := store.venue(seeded.Id)
	assert.Equal(t, entity.SubscriptionStatusCanceled, got.SubscriptionStatus)
	assert.False(t, got.Active)
}

func TestFailStripePaymentMarksPastDue(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, func(v *entity.Venue) {
		v.StripeCustomerId = strPtr("cus_fail")
	})
	svc, _ := newTestEngine(store, nil)

	err := svc.FailStripePayment(context.Background(), &dto.StripePaymentFailed{CustomerId: "cus_fail"})
	require.NoError(t, err)

	got := store.venue(seeded.Id)
	assert.Equal(t, entity.SubscriptionStatusPastDue, got.SubscriptionStatus)
	assert.True(t, got.Active, "payment failure marks past_due without touching the serving flag")
}

func TestPaypalCreateNewVenue(t *testing.T) {
	store := newFakeStore()
	pp := &fakePaypalClient{sub: &paypal.Subscription{
		ID:     "I-NEW1",
		Status: paypal.StatusActive,
		Subscriber: paypal.Subscriber{
			EmailAddress: " Payer@Example.COM ",
		},
	}}
	svc, pub := newTestEngine(store, pp)

	venue, err := svc.CreateOrAttachPaypalSubscription(context.Background(), &dto.PaypalCreateSubscriptionRequest{
		SubscriptionId: "I-NEW1",
		VenueName:      "Paypal Place",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentProviderPaypal, venue.PaymentProvider)
	assert.Equal(t, entity.SubscriptionStatusTrialing, venue.SubscriptionStatus)
	assert.Equal(t, "payer@example.com", venue.Email, "stored email is trimmed and lowercased")
	require.NotNil(t, venue.PaypalSubscriptionId)
	assert.Equal(t, "I-NEW1", *venue.PaypalSubscriptionId)
	assert.Equal(t, []string{events.TypeVenueCreated}, pub.published())
}

func TestPaypalDedupBySubscriptionId(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, func(v *entity.Venue) {
		v.PaymentProvider = entity.PaymentProviderPaypal
		v.PaypalSubscriptionId = strPtr("I-DUP1")
	})
	pp := &fakePaypalClient{sub: &paypal.Subscription{ID: "I-DUP1", Status: paypal.StatusActive}}
	svc, pub := newTestEngine(store, pp)

	venue, err := svc.CreateOrAttachPaypalSubscription(context.Background(), &dto.PaypalCreateSubscriptionRequest{
		SubscriptionId: "I-DUP1",
	})
	require.NoError(t, err)

	assert.Equal(t, seeded.Id, venue.Id)
	assert.Equal(t, 1, store.venueCount())
	assert.Empty(t, pub.published())
}

func TestPaypalAttachByEmailCaseInsensitive(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, func(v *entity.Venue) {
		v.Email = "Owner@Example.COM"
		v.Active = false
		v.SubscriptionStatus = entity.SubscriptionStatusCanceled
	})
	pp := &fakePaypalClient{sub: &paypal.Subscription{
		ID:     "I-ATT1",
		Status: paypal.StatusApprovalPending,
	}}
	svc, pub := newTestEngine(store, pp)

	venue, err := svc.CreateOrAttachPaypalSubscription(context.Background(), &dto.PaypalCreateSubscriptionRequest{
		SubscriptionId: "I-ATT1",
		Email:          "owner@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, seeded.Id, venue.Id)
	assert.Equal(t, 1, store.venueCount())
	assert.Equal(t, entity.PaymentProviderPaypal, venue.PaymentProvider)
	assert.Equal(t, entity.SubscriptionStatusTrialing, venue.SubscriptionStatus)
	assert.False(t, venue.Active, "attaching a subscription must not resurrect a deactivated venue")
	assert.Empty(t, pub.published(), "attach reuses the venue, no creation event")
}

func TestPaypalAttachNonTrialStatus(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, nil)
	pp := &fakePaypalClient{sub: &paypal.Subscription{
		ID:     "I-SUS1",
		Status: paypal.StatusSuspended,
	}}
	svc, _ := newTestEngine(store, pp)

	venue, err := svc.CreateOrAttachPaypalSubscription(context.Background(), &dto.PaypalCreateSubscriptionRequest{
		SubscriptionId: "I-SUS1",
		Email:          seeded.Email,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusActive, venue.SubscriptionStatus)
}

func TestPaypalVerificationFailurePersistsNothing(t *testing.T) {
	store := newFakeStore()
	pp := &fakePaypalClient{err: paypal.ErrVerificationFailed}
	svc, _ := newTestEngine(store, pp)

	_, err := svc.CreateOrAttachPaypalSubscription(context.Background(), &dto.PaypalCreateSubscriptionRequest{
		SubscriptionId: "I-BAD1",
	})
	assert.ErrorIs(t, err, paypal.ErrVerificationFailed)
	assert.Equal(t, 0, store.venueCount())
}

func TestPaypalUnavailablePersistsNothing(t *testing.T) {
	store := newFakeStore()
	pp := &fakePaypalClient{err: paypal.ErrUnavailable}
	svc, _ := newTestEngine(store, pp)

	_, err := svc.CreateOrAttachPaypalSubscription(context.Background(), &dto.PaypalCreateSubscriptionRequest{
		SubscriptionId: "I-DOWN1",
	})
	assert.ErrorIs(t, err, paypal.ErrUnavailable)
	assert.Equal(t, 0, store.venueCount())
}

func TestHandlePaypalWebhook(t *testing.T) {
	tests := []struct {
		eventType  string
		wantStatus entity.SubscriptionStatus
		wantActive bool
	}{
		{"BILLING.SUBSCRIPTION.ACTIVATED", entity.SubscriptionStatusActive, true},
		{"BILLING.SUBSCRIPTION.CANCELLED", entity.SubscriptionStatusCanceled, false},
		{"BILLING.SUBSCRIPTION.SUSPENDED", entity.SubscriptionStatusPastDue, true},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			store := newFakeStore()
			seeded := seedVenue(store, func(v *entity.Venue) {
				v.PaymentProvider = entity.PaymentProviderPaypal
				v.PaypalSubscriptionId = strPtr("I-HOOK1")
			})
			svc, _ := newTestEngine(store, nil)

			event := &dto.PaypalWebhookEvent{EventType: tt.eventType}
			event.Resource.Id = "I-HOOK1"

			require.NoError(t, svc.HandlePaypalWebhook(context.Background(), event))

			got := store.venue(seeded.Id)
			assert.Equal(t, tt.wantStatus, got.SubscriptionStatus)
			assert.Equal(t, tt.wantActive, got.Active)
		})
	}
}

func TestHandlePaypalWebhookActivatedDoesNotResurrect(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, func(v *entity.Venue) {
		v.PaymentProvider = entity.PaymentProviderPaypal
		v.PaypalSubscriptionId = strPtr("I-RES1")
		v.Active = false
		v.SubscriptionStatus = entity.SubscriptionStatusCanceled
	})
	svc, _ := newTestEngine(store, nil)

	event := &dto.PaypalWebhookEvent{EventType: "BILLING.SUBSCRIPTION.ACTIVATED"}
	event.Resource.Id = "I-RES1"
	require.NoError(t, svc.HandlePaypalWebhook(context.Background(), event))

	got := store.venue(seeded.Id)
	assert.Equal(t, entity.SubscriptionStatusActive, got.SubscriptionStatus)
	assert.False(t, got.Active)
}

func TestHandlePaypalWebhookIgnoresOtherEvents(t *testing.T) {
	store := newFakeStore()
	seeded := seedVenue(store, func(v *entity.Venue) {
		v.PaypalSubscriptionId = strPtr("I-HOOK2")
	})
	svc, _ := newTestEngine(store, nil)

	event := &dto.PaypalWebhookEvent{EventType: "PAYMENT.SALE.COMPLETED"}
	event.Resource.Id = "I-HOOK2"
	require.NoError(t, svc.HandlePaypalWebhook(context.Background(), event))

	got := store.venue(seeded.Id)
	assert.Equal(t, entity.SubscriptionStatusActive, got.SubscriptionStatus)
}

func TestHandlePaypalWebhookUnknownSubscriptionIsNoOp(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestEngine(store, nil)

	event := &dto.PaypalWebhookEvent{EventType: "BILLING.SUBSCRIPTION.CANCELLED"}
	event.Resource.Id = "I-GHOST"
	assert.NoError(t, svc.HandlePaypalWebhook(context.Background(), event))
}
