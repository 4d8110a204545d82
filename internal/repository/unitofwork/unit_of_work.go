package unitofwork

import (
	"context"

	"qrcapture-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	VenueRepository() contract.VenueRepository
	LeadRepository() contract.LeadRepository
	WebhookEventRepository() contract.WebhookEventRepository
}
