// FILE: internal/controller/capture_controller.go
package controller

import (
	"fmt"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/pkg/serverutils"
	"qrcapture-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Menus change rarely; logos basically never.
const (
	menuCacheControl = "public, max-age=3600"
	logoCacheControl = "public, max-age=86400"
)

// ICaptureController serves the public, unauthenticated surface: the capture
// page itself, lead submission, and the venue's menu and logo files.
type ICaptureController interface {
	RegisterRoutes(r fiber.Router)
	GetPage(ctx *fiber.Ctx) error
	SubmitLead(ctx *fiber.Ctx) error
	GetMenu(ctx *fiber.Ctx) error
	GetLogo(ctx *fiber.Ctx) error
}

type captureController struct {
	venues service.IVenueService
	leads  service.ILeadService
}

func NewCaptureController(venues service.IVenueService, leads service.ILeadService) ICaptureController {
	return &captureController{
		venues: venues,
		leads:  leads,
	}
}

func (c *captureController) RegisterRoutes(r fiber.Router) {
	r.Get("/c/:slug", c.GetPage)
	r.Post("/c/:slug/submit", c.SubmitLead)
	r.Get("/menu/:slug", c.GetMenu)
	r.Get("/logo/:slug", c.GetLogo)
}

func (c *captureController) GetPage(ctx *fiber.Ctx) error {
	res, err := c.venues.GetCapturePage(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching capture page", res))
}

func (c *captureController) SubmitLead(ctx *fiber.Ctx) error {
	var req dto.CaptureLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.leads.Capture(ctx.Context(), ctx.Params("slug"), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Thanks! You're in.", res))
}

func (c *captureController) GetMenu(ctx *fiber.Ctx) error {
	blob, err := c.venues.GetMenu(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return mapServiceError(err)
	}
	return serveBlob(ctx, blob, menuCacheControl)
}

func (c *captureController) GetLogo(ctx *fiber.Ctx) error {
	blob, err := c.venues.GetLogo(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return mapServiceError(err)
	}
	return serveBlob(ctx, blob, logoCacheControl)
}

func serveBlob(ctx *fiber.Ctx, blob *service.FileBlob, cacheControl string) error {
	ctx.Set(fiber.HeaderContentType, blob.ContentType)
	ctx.Set(fiber.HeaderCacheControl, cacheControl)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", blob.Filename))
	return ctx.Send(blob.Data)
}
