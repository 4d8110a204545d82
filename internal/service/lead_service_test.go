// FILE: internal/service/lead_service_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/entity"
	"qrcapture-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeadService(store *fakeStore) (ILeadService, *recordingPublisher) {
	pub := &recordingPublisher{}
	svc := NewLeadService(&fakeFactory{store: store}, pub, nopLogger{})
	return svc, pub
}

func TestCaptureStoresLeadAndEmitsEvent(t *testing.T) {
	store := newFakeStore()
	seedVenue(store, func(v *entity.Venue) { v.Slug = "cafe1234" })
	svc, pub := newTestLeadService(store)

	lead, err := svc.Capture(context.Background(), "cafe1234", &dto.CaptureLeadRequest{
		Name:  "Sam Visitor",
		Phone: "+15550100",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sam Visitor", lead.Name)
	assert.Equal(t, string(entity.LeadSourceQR), lead.Source, "source defaults to qr")
	assert.Equal(t, []string{events.TypeLeadCaptured}, pub.published())
}

func TestCaptureRequiresContact(t *testing.T) {
	store := newFakeStore()
	seedVenue(store, func(v *entity.Venue) { v.Slug = "cafe1234" })
	svc, pub := newTestLeadService(store)

	_, err := svc.Capture(context.Background(), "cafe1234", &dto.CaptureLeadRequest{
		Name: "No Contact",
	})
	assert.ErrorIs(t, err, ErrContactRequired)
	assert.Empty(t, pub.published())
}

func TestCaptureInactiveVenueIsGated(t *testing.T) {
	store := newFakeStore()
	seedVenue(store, func(v *entity.Venue) {
		v.Slug = "gone1234"
		v.Active = false
		v.SubscriptionStatus = entity.SubscriptionStatusCanceled
	})
	svc, _ := newTestLeadService(store)

	_, err := svc.Capture(context.Background(), "gone1234", &dto.CaptureLeadRequest{
		Email: "visitor@example.com",
	})
	assert.ErrorIs(t, err, ErrSubscriptionRequired)
}

func TestCaptureLapsedSubscriptionIsGated(t *testing.T) {
	store := newFakeStore()
	seedVenue(store, func(v *entity.Venue) {
		v.Slug = "late1234"
		v.SubscriptionStatus = entity.SubscriptionStatusPastDue
	})
	svc, pub := newTestLeadService(store)

	// The venue is still flagged active; the non-granting status alone
	// must turn the page off.
	_, err := svc.Capture(context.Background(), "late1234", &dto.CaptureLeadRequest{
		Email: "visitor@example.com",
	})
	assert.ErrorIs(t, err, ErrSubscriptionRequired)
	assert.Empty(t, pub.published())
}

func TestCaptureUnknownSlug(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestLeadService(store)

	_, err := svc.Capture(context.Background(), "missing1", &dto.CaptureLeadRequest{
		Email: "visitor@example.com",
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestUpdateNotesOwnership(t *testing.T) {
	store := newFakeStore()
	owner := seedVenue(store, func(v *entity.Venue) { v.Slug = "mine1234" })
	stranger := uuid.New()

	leadId := uuid.New()
	store.leads[leadId] = &entity.Lead{
		Id:      leadId,
		VenueId: owner.Id,
		Phone:   "+15550101",
		Source:  entity.LeadSourceQR,
	}

	svc, _ := newTestLeadService(store)

	err := svc.UpdateNotes(context.Background(), stranger, leadId, "sneaky note")
	assert.ErrorIs(t, err, ErrLeadNotFound)

	require.NoError(t, svc.UpdateNotes(context.Background(), owner.Id, leadId, "vip customer"))
	assert.Equal(t, "vip customer", store.leads[leadId].Notes)
}

func TestExportCSV(t *testing.T) {
	store := newFakeStore()
	venue := seedVenue(store, nil)

	leadId := uuid.New()
	store.leads[leadId] = &entity.Lead{
		Id:      leadId,
		VenueId: venue.Id,
		Name:    "Comma, Name",
		Email:   "c@example.com",
		Source:  entity.LeadSourceWeb,
	}

	svc, _ := newTestLeadService(store)

	out, err := svc.ExportCSV(context.Background(), venue.Id)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,phone,email,source,notes,created_at", lines[0])
	assert.Contains(t, lines[1], `"Comma, Name"`)
	assert.Contains(t, lines[1], "web")
}
