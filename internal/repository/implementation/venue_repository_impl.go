package implementation

import (
	"context"
	"errors"

	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/mapper"
	"qrcapture-be/internal/model"
	"qrcapture-be/internal/repository/contract"
	"qrcapture-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VenueMapper
}

func NewVenueRepository(db *gorm.DB) contract.VenueRepository {
	return &VenueRepositoryImpl{
		db:     db,
		mapper: mapper.NewVenueMapper(),
	}
}

func (r *VenueRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, venue *entity.Venue) error {
	m := r.mapper.ToModel(venue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*venue = *r.mapper.ToEntity(m)
	return nil
}

func (r *VenueRepositoryImpl) Update(ctx context.Context, venue *entity.Venue) error {
	m := r.mapper.ToModel(venue)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*venue = *r.mapper.ToEntity(m)
	return nil
}

func (r *VenueRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Venue, error) {
	var m model.Venue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VenueRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Venue, error) {
	var models []*model.Venue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Venue, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *VenueRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Venue{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

// Identity lookups

func (r *VenueRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *VenueRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*entity.Venue, error) {
	return r.FindOne(ctx, specification.BySlug{Slug: slug})
}

func (r *VenueRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Venue, error) {
	return r.FindOne(ctx, specification.ByEmailInsensitive{Email: email})
}

func (r *VenueRepositoryImpl) FindByStripeCustomerId(ctx context.Context, customerId string) (*entity.Venue, error) {
	return r.FindOne(ctx, specification.Filter("stripe_customer_id", customerId))
}

func (r *VenueRepositoryImpl) FindByStripeSubscriptionId(ctx context.Context, subscriptionId string) (*entity.Venue, error) {
	return r.FindOne(ctx, specification.Filter("stripe_subscription_id", subscriptionId))
}

func (r *VenueRepositoryImpl) FindByPaypalSubscriptionId(ctx context.Context, subscriptionId string) (*entity.Venue, error) {
	return r.FindOne(ctx, specification.Filter("paypal_subscription_id", subscriptionId))
}
