package implementation

import (
	"context"
	"time"

	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/mapper"
	"qrcapture-be/internal/model"
	"qrcapture-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WebhookEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WebhookEventMapper
}

func NewWebhookEventRepository(db *gorm.DB) contract.WebhookEventRepository {
	return &WebhookEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewWebhookEventMapper(),
	}
}

func (r *WebhookEventRepositoryImpl) Record(ctx context.Context, event *entity.WebhookEvent) error {
	m := r.mapper.ToModel(event)
	// Replayed deliveries hit the (provider, provider_event_id) unique index;
	// ON CONFLICT DO NOTHING keeps recording idempotent.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

func (r *WebhookEventRepositoryImpl) MarkProcessed(ctx context.Context, provider entity.PaymentProvider, providerEventId string, processingError string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.WebhookEvent{}).
		Where("provider = ? AND provider_event_id = ?", string(provider), providerEventId).
		Updates(map[string]interface{}{
			"processed_at":     &now,
			"processing_error": processingError,
		}).Error
}
