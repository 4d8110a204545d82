package contract

import (
	"context"

	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	Update(ctx context.Context, venue *entity.Venue) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Venue, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Venue, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Identity lookups. Every reconciliation path resolves a venue through one
	// of these; each returns (nil, nil) when no venue matches.
	FindById(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Venue, error)
	FindByEmail(ctx context.Context, email string) (*entity.Venue, error) // case-insensitive
	FindByStripeCustomerId(ctx context.Context, customerId string) (*entity.Venue, error)
	FindByStripeSubscriptionId(ctx context.Context, subscriptionId string) (*entity.Venue, error)
	FindByPaypalSubscriptionId(ctx context.Context, subscriptionId string) (*entity.Venue, error)
}
