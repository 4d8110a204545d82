// FILE: internal/service/fakes_test.go
package service

import (
	"context"
	"strings"
	"sync"

	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/repository/contract"
	"qrcapture-be/internal/repository/specification"
	"qrcapture-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database, shared by every unit
// of work the fake factory hands out.
type fakeStore struct {
	mu     sync.Mutex
	venues map[uuid.UUID]*entity.Venue
	leads  map[uuid.UUID]*entity.Lead
	events []*entity.WebhookEvent
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		venues: make(map[uuid.UUID]*entity.Venue),
		leads:  make(map[uuid.UUID]*entity.Lead),
	}
}

func (s *fakeStore) addVenue(v *entity.Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *v
	s.venues[v.Id] = &cp
}

func (s *fakeStore) venue(id uuid.UUID) *entity.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.venues[id]; ok {
		cp := *v
		return &cp
	}
	return nil
}

func (s *fakeStore) venueCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.venues)
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) VenueRepository() contract.VenueRepository {
	return &fakeVenueRepository{store: u.store}
}

func (u *fakeUnitOfWork) LeadRepository() contract.LeadRepository {
	return &fakeLeadRepository{store: u.store}
}

func (u *fakeUnitOfWork) WebhookEventRepository() contract.WebhookEventRepository {
	return &fakeWebhookEventRepository{store: u.store}
}

type fakeVenueRepository struct {
	store *fakeStore
}

func (r *fakeVenueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	r.store.addVenue(venue)
	return nil
}

func (r *fakeVenueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	r.store.addVenue(venue)
	return nil
}

func (r *fakeVenueRepository) findOne(match func(*entity.Venue) bool) (*entity.Venue, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, v := range r.store.venues {
		if match(v) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVenueRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Venue, error) {
	return nil, nil
}

func (r *fakeVenueRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Venue, error) {
	return nil, nil
}

func (r *fakeVenueRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.venues)), nil
}

func (r *fakeVenueRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	return r.findOne(func(v *entity.Venue) bool { return v.Id == id })
}

func (r *fakeVenueRepository) FindBySlug(ctx context.Context, slug string) (*entity.Venue, error) {
	return r.findOne(func(v *entity.Venue) bool { return v.Slug == slug })
}

func (r *fakeVenueRepository) FindByEmail(ctx context.Context, email string) (*entity.Venue, error) {
	return r.findOne(func(v *entity.Venue) bool {
		return strings.EqualFold(v.Email, email)
	})
}

func (r *fakeVenueRepository) FindByStripeCustomerId(ctx context.Context, customerId string) (*entity.Venue, error) {
	return r.findOne(func(v *entity.Venue) bool {
		return v.StripeCustomerId != nil && *v.StripeCustomerId == customerId
	})
}

func (r *fakeVenueRepository) FindByStripeSubscriptionId(ctx context.Context, subscriptionId string) (*entity.Venue, error) {
	return r.findOne(func(v *entity.Venue) bool {
		return v.StripeSubscriptionId != nil && *v.StripeSubscriptionId == subscriptionId
	})
}

func (r *fakeVenueRepository) FindByPaypalSubscriptionId(ctx context.Context, subscriptionId string) (*entity.Venue, error) {
	return r.findOne(func(v *entity.Venue) bool {
		return v.PaypalSubscriptionId != nil && *v.PaypalSubscriptionId == subscriptionId
	})
}

type fakeLeadRepository struct {
	store *fakeStore
}

func (r *fakeLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *lead
	r.store.leads[lead.Id] = &cp
	return nil
}

func (r *fakeLeadRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if l, ok := r.store.leads[id]; ok {
		l.Notes = notes
	}
	return nil
}

func (r *fakeLeadRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, l := range r.store.leads {
		if leadMatches(l, specs) {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func leadMatches(l *entity.Lead, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if l.Id != s.ID {
				return false
			}
		case specification.VenueOwnedBy:
			if l.VenueId != s.VenueID {
				return false
			}
		}
	}
	return true
}

func (r *fakeLeadRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Lead
	for _, l := range r.store.leads {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeLeadRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.leads)), nil
}

type fakeWebhookEventRepository struct {
	store *fakeStore
}

func (r *fakeWebhookEventRepository) Record(ctx context.Context, event *entity.WebhookEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.events {
		if e.Provider == event.Provider && e.ProviderEventId == event.ProviderEventId {
			return nil
		}
	}
	cp := *event
	r.store.events = append(r.store.events, &cp)
	return nil
}

func (r *fakeWebhookEventRepository) MarkProcessed(ctx context.Context, provider entity.PaymentProvider, providerEventId string, processingError string) error {
	return nil
}

// recordingPublisher captures emitted events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType string, data map[string]interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

// nopLogger satisfies logger.ILogger without output noise in tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
