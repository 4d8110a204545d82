// FILE: internal/controller/paypal_controller.go
package controller

import (
	"encoding/json"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/pkg/logger"
	"qrcapture-be/internal/pkg/serverutils"
	"qrcapture-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaypalController interface {
	RegisterRoutes(r fiber.Router)
	CreateSubscription(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paypalController struct {
	reconciliation service.IReconciliationService
	audit          service.IWebhookAuditService
	log            logger.ILogger
}

func NewPaypalController(
	reconciliation service.IReconciliationService,
	audit service.IWebhookAuditService,
	log logger.ILogger,
) IPaypalController {
	return &paypalController{
		reconciliation: reconciliation,
		audit:          audit,
		log:            log,
	}
}

func (c *paypalController) RegisterRoutes(r fiber.Router) {
	r.Post("/api/paypal/create-subscription", c.CreateSubscription)
	r.Post("/webhook/paypal", c.Webhook)
}

// CreateSubscription is called by the frontend once PayPal's button flow
// approves. The id is never trusted as-is; the service re-verifies it against
// PayPal before creating or attaching a venue.
func (c *paypalController) CreateSubscription(ctx *fiber.Ctx) error {
	var req dto.PaypalCreateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	venue, err := c.reconciliation.CreateOrAttachPaypalSubscription(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription linked", &dto.PaypalCreateSubscriptionResponse{
		VenueId:    venue.Id.String(),
		Slug:       venue.Slug,
		CaptureURL: venue.CaptureURL(),
		Status:     string(venue.SubscriptionStatus),
	}))
}

func (c *paypalController) Webhook(ctx *fiber.Ctx) error {
	payload := ctx.Body()

	var event dto.PaypalWebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid webhook payload")
	}

	c.audit.Record(ctx.Context(), entity.PaymentProviderPaypal, event.Id, event.EventType, string(payload), true)

	if err := c.reconciliation.HandlePaypalWebhook(ctx.Context(), &event); err != nil {
		c.audit.MarkProcessed(ctx.Context(), entity.PaymentProviderPaypal, event.Id, err.Error())
		c.log.Error("paypal", "webhook processing failed", map[string]interface{}{
			"event_id":   event.Id,
			"event_type": event.EventType,
			"error":      err.Error(),
		})
		return fiber.NewError(fiber.StatusInternalServerError, "webhook processing failed")
	}

	c.audit.MarkProcessed(ctx.Context(), entity.PaymentProviderPaypal, event.Id, "")
	return ctx.JSON(dto.WebhookAck{Received: true})
}
