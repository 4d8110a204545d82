// FILE: internal/controller/errors.go
package controller

import (
	"errors"

	"qrcapture-be/internal/service"
	"qrcapture-be/pkg/payment/paypal"
	"qrcapture-be/pkg/upload"

	"github.com/gofiber/fiber/v2"
)

// mapServiceError translates service sentinels into HTTP errors for the
// error handler middleware. Unknown errors pass through as 500s.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrVenueNotFound), errors.Is(err, service.ErrLeadNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSubscriptionRequired):
		return fiber.NewError(fiber.StatusPaymentRequired, err.Error())
	case errors.Is(err, service.ErrContactRequired):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBillingUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, service.ErrNoBillingAccount):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, paypal.ErrUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "payment provider unavailable, please retry")
	case errors.Is(err, paypal.ErrVerificationFailed):
		return fiber.NewError(fiber.StatusBadRequest, "subscription could not be verified")
	case errors.Is(err, upload.ErrTooLarge):
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, upload.ErrUnsupportedFormat), errors.Is(err, upload.ErrDecodeFailed):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}
