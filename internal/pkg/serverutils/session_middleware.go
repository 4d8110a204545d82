package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionResolver turns an opaque session token into a venue id.
type SessionResolver interface {
	Resolve(token string) (uuid.UUID, bool)
}

// SessionMiddleware guards dashboard routes. The token travels as a bearer
// token; on success the venue id is stored in ctx.Locals("venue_id").
func SessionMiddleware(sessions SessionResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		token := authHeader[7:]

		venueId, ok := sessions.Resolve(token)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired session"})
		}

		ctx.Locals("venue_id", venueId)
		return ctx.Next()
	}
}
