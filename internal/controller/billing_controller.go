// FILE: internal/controller/billing_controller.go
package controller

import (
	"encoding/json"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/pkg/logger"
	"qrcapture-be/internal/pkg/serverutils"
	"qrcapture-be/internal/service"
	"qrcapture-be/pkg/payment/stripegw"

	"github.com/gofiber/fiber/v2"
	stripe "github.com/stripe/stripe-go/v72"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	SignupCheckout(ctx *fiber.Ctx) error
	ConfirmSignup(ctx *fiber.Ctx) error
	BillingPortal(ctx *fiber.Ctx) error
	StripeWebhook(ctx *fiber.Ctx) error
}

type billingController struct {
	billing        service.IBillingService
	reconciliation service.IReconciliationService
	audit          service.IWebhookAuditService
	gateway        stripegw.StripeGateway
	sessions       serverutils.SessionResolver
	webhookSecret  string
	log            logger.ILogger
}

func NewBillingController(
	billing service.IBillingService,
	reconciliation service.IReconciliationService,
	audit service.IWebhookAuditService,
	gateway stripegw.StripeGateway,
	sessions serverutils.SessionResolver,
	webhookSecret string,
	log logger.ILogger,
) IBillingController {
	return &billingController{
		billing:        billing,
		reconciliation: reconciliation,
		audit:          audit,
		gateway:        gateway,
		sessions:       sessions,
		webhookSecret:  webhookSecret,
		log:            log,
	}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	r.Post("/webhook/stripe", c.StripeWebhook)
	r.Post("/api/signup/checkout", c.SignupCheckout)
	r.Get("/api/signup/confirm", c.ConfirmSignup)
	r.Get("/api/billing/portal", serverutils.SessionMiddleware(c.sessions), c.BillingPortal)
}

func (c *billingController) SignupCheckout(ctx *fiber.Ctx) error {
	var req dto.SignupCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.billing.StartSignupCheckout(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout session created", res))
}

func (c *billingController) ConfirmSignup(ctx *fiber.Ctx) error {
	sessionId := ctx.Query("session_id")
	if sessionId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session_id is required")
	}

	res, err := c.billing.ConfirmSignup(ctx.Context(), sessionId)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Signup status", res))
}

func (c *billingController) BillingPortal(ctx *fiber.Ctx) error {
	venueId := venueIdFromLocals(ctx)

	res, err := c.billing.BillingPortalURL(ctx.Context(), venueId, ctx.Query("return_url"))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Billing portal session created", res))
}

// StripeWebhook verifies the signature before anything else; a delivery that
// does not verify is rejected with 400 and never reaches a handler.
func (c *billingController) StripeWebhook(ctx *fiber.Ctx) error {
	payload := ctx.Body()
	sigHeader := ctx.Get("Stripe-Signature")

	event, err := c.gateway.ConstructWebhookEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		c.log.Warn("billing", "stripe webhook signature verification failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fiber.NewError(fiber.StatusBadRequest, "invalid webhook signature")
	}

	c.audit.Record(ctx.Context(), entity.PaymentProviderStripe, event.ID, event.Type, string(payload), true)

	if err := c.dispatchStripeEvent(ctx, &event); err != nil {
		c.audit.MarkProcessed(ctx.Context(), entity.PaymentProviderStripe, event.ID, err.Error())
		c.log.Error("billing", "stripe webhook processing failed", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
			"error":      err.Error(),
		})
		return fiber.NewError(fiber.StatusInternalServerError, "webhook processing failed")
	}

	c.audit.MarkProcessed(ctx.Context(), entity.PaymentProviderStripe, event.ID, "")
	return ctx.JSON(dto.WebhookAck{Received: true})
}

func (c *billingController) dispatchStripeEvent(ctx *fiber.Ctx, event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		checkout, err := decodeCheckoutCompleted(event)
		if err != nil {
			return err
		}
		_, err = c.reconciliation.CompleteStripeCheckout(ctx.Context(), checkout)
		return err

	case "customer.subscription.updated":
		change, err := decodeSubscriptionChange(event)
		if err != nil {
			return err
		}
		return c.reconciliation.UpdateStripeSubscription(ctx.Context(), change)

	case "customer.subscription.deleted":
		change, err := decodeSubscriptionChange(event)
		if err != nil {
			return err
		}
		return c.reconciliation.DeleteStripeSubscription(ctx.Context(), change)

	case "invoice.payment_failed":
		var invoice struct {
			Customer string `json:"customer"`
		}
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}
		return c.reconciliation.FailStripePayment(ctx.Context(), &dto.StripePaymentFailed{
			EventId:    event.ID,
			CustomerId: invoice.Customer,
		})

	default:
		// Unhandled event types are acknowledged so Stripe stops retrying.
		return nil
	}
}

func decodeCheckoutCompleted(event *stripe.Event) (*dto.StripeCheckoutCompleted, error) {
	var sess struct {
		Customer        string `json:"customer"`
		Subscription    string `json:"subscription"`
		CustomerEmail   string `json:"customer_email"`
		CustomerDetails struct {
			Email string `json:"email"`
		} `json:"customer_details"`
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, err
	}

	email := sess.CustomerDetails.Email
	if email == "" {
		email = sess.CustomerEmail
	}
	if email == "" {
		email = sess.Metadata["email"]
	}

	return &dto.StripeCheckoutCompleted{
		EventId:        event.ID,
		CustomerId:     sess.Customer,
		SubscriptionId: sess.Subscription,
		CustomerEmail:  email,
		VenueName:      sess.Metadata["venue_name"],
	}, nil
}

func decodeSubscriptionChange(event *stripe.Event) (*dto.StripeSubscriptionChange, error) {
	var sub struct {
		ID       string `json:"id"`
		Customer string `json:"customer"`
		Status   string `json:"status"`
	}
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return nil, err
	}
	return &dto.StripeSubscriptionChange{
		EventId:        event.ID,
		SubscriptionId: sub.ID,
		CustomerId:     sub.Customer,
		Status:         sub.Status,
	}, nil
}
