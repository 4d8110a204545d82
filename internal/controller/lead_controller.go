// FILE: internal/controller/lead_controller.go
package controller

import (
	"fmt"
	"time"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/pkg/serverutils"
	"qrcapture-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UpdateNotes(ctx *fiber.Ctx) error
	ExportCSV(ctx *fiber.Ctx) error
}

type leadController struct {
	leads    service.ILeadService
	sessions serverutils.SessionResolver
}

func NewLeadController(leads service.ILeadService, sessions serverutils.SessionResolver) ILeadController {
	return &leadController{
		leads:    leads,
		sessions: sessions,
	}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/leads", serverutils.SessionMiddleware(c.sessions))
	h.Get("/", c.List)
	h.Get("/export.csv", c.ExportCSV)
	h.Put("/:id/notes", c.UpdateNotes)
}

func (c *leadController) List(ctx *fiber.Ctx) error {
	res, err := c.leads.List(ctx.Context(), venueIdFromLocals(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching leads", res))
}

func (c *leadController) UpdateNotes(ctx *fiber.Ctx) error {
	leadId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid lead id")
	}

	var req dto.UpdateLeadNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.leads.UpdateNotes(ctx.Context(), venueIdFromLocals(ctx), leadId, req.Notes); err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notes updated", nil))
}

func (c *leadController) ExportCSV(ctx *fiber.Ctx) error {
	data, err := c.leads.ExportCSV(ctx.Context(), venueIdFromLocals(ctx))
	if err != nil {
		return mapServiceError(err)
	}

	filename := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Send(data)
}
