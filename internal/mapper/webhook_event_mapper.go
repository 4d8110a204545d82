package mapper

import (
	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/model"
)

type WebhookEventMapper struct{}

func NewWebhookEventMapper() *WebhookEventMapper {
	return &WebhookEventMapper{}
}

func (m *WebhookEventMapper) ToEntity(e *model.WebhookEvent) *entity.WebhookEvent {
	if e == nil {
		return nil
	}
	return &entity.WebhookEvent{
		Id:              e.Id,
		Provider:        entity.PaymentProvider(e.Provider),
		ProviderEventId: e.ProviderEventId,
		EventType:       e.EventType,
		PayloadJSON:     e.PayloadJSON,
		SignatureValid:  e.SignatureValid,
		ProcessedAt:     e.ProcessedAt,
		ProcessingError: e.ProcessingError,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *WebhookEventMapper) ToModel(e *entity.WebhookEvent) *model.WebhookEvent {
	if e == nil {
		return nil
	}
	return &model.WebhookEvent{
		Id:              e.Id,
		Provider:        string(e.Provider),
		ProviderEventId: e.ProviderEventId,
		EventType:       e.EventType,
		PayloadJSON:     e.PayloadJSON,
		SignatureValid:  e.SignatureValid,
		ProcessedAt:     e.ProcessedAt,
		ProcessingError: e.ProcessingError,
		CreatedAt:       e.CreatedAt,
	}
}
