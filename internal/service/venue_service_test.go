// FILE: internal/service/venue_service_test.go
package service

import (
	"context"
	"testing"

	"qrcapture-be/internal/entity"
	"qrcapture-be/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVenueService(store *fakeStore) IVenueService {
	return NewVenueService(&fakeFactory{store: store}, upload.Profile{}, upload.Profile{}, nopLogger{})
}

func TestGetCapturePageActiveVenue(t *testing.T) {
	store := newFakeStore()
	seedVenue(store, func(v *entity.Venue) {
		v.Slug = "open1234"
		v.Name = "Open Cafe"
	})
	svc := newTestVenueService(store)

	page, err := svc.GetCapturePage(context.Background(), "open1234")
	require.NoError(t, err)
	assert.Equal(t, "Open Cafe", page.Name)
}

func TestGetCapturePageGating(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Venue)
	}{
		{"deactivated venue", func(v *entity.Venue) {
			v.Active = false
			v.SubscriptionStatus = entity.SubscriptionStatusCanceled
		}},
		{"past due subscription", func(v *entity.Venue) {
			v.SubscriptionStatus = entity.SubscriptionStatusPastDue
		}},
		{"canceled subscription", func(v *entity.Venue) {
			v.SubscriptionStatus = entity.SubscriptionStatusCanceled
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			seedVenue(store, func(v *entity.Venue) {
				v.Slug = "shut1234"
				tt.mutate(v)
			})
			svc := newTestVenueService(store)

			_, err := svc.GetCapturePage(context.Background(), "shut1234")
			assert.ErrorIs(t, err, ErrSubscriptionRequired)
		})
	}
}

func TestGetMenuUnknownSlug(t *testing.T) {
	store := newFakeStore()
	svc := newTestVenueService(store)

	_, err := svc.GetMenu(context.Background(), "missing1")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
