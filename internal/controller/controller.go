// FILE: internal/controller/controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// venueIdFromLocals reads the venue id the session middleware stored. Routes
// behind the middleware always have it; uuid.Nil only shows up if a route is
// wired without the guard.
func venueIdFromLocals(ctx *fiber.Ctx) uuid.UUID {
	if id, ok := ctx.Locals("venue_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
