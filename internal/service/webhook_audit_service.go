// FILE: internal/service/webhook_audit_service.go
package service

import (
	"context"

	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/pkg/logger"
	"qrcapture-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IWebhookAuditService keeps a best-effort record of every provider delivery.
// Audit failures are logged and swallowed: losing an audit row must never
// cause a webhook to be retried or a reconciliation to be lost.
type IWebhookAuditService interface {
	Record(ctx context.Context, provider entity.PaymentProvider, eventId, eventType, payload string, signatureValid bool)
	MarkProcessed(ctx context.Context, provider entity.PaymentProvider, eventId string, processingError string)
}

type webhookAuditService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewWebhookAuditService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IWebhookAuditService {
	return &webhookAuditService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *webhookAuditService) Record(ctx context.Context, provider entity.PaymentProvider, eventId, eventType, payload string, signatureValid bool) {
	if eventId == "" {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.WebhookEventRepository().Record(ctx, &entity.WebhookEvent{
		Id:              uuid.New(),
		Provider:        provider,
		ProviderEventId: eventId,
		EventType:       eventType,
		PayloadJSON:     payload,
		SignatureValid:  signatureValid,
	})
	if err != nil {
		s.log.Error("webhook_audit", "failed to record webhook event", map[string]interface{}{
			"provider": provider,
			"event_id": eventId,
			"error":    err.Error(),
		})
	}
}

func (s *webhookAuditService) MarkProcessed(ctx context.Context, provider entity.PaymentProvider, eventId string, processingError string) {
	if eventId == "" {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WebhookEventRepository().MarkProcessed(ctx, provider, eventId, processingError); err != nil {
		s.log.Error("webhook_audit", "failed to mark webhook event processed", map[string]interface{}{
			"provider": provider,
			"event_id": eventId,
			"error":    err.Error(),
		})
	}
}
