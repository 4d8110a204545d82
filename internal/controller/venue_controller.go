// FILE: internal/controller/venue_controller.go
package controller

import (
	"io"

	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/pkg/serverutils"
	"qrcapture-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVenueController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
	UploadMenu(ctx *fiber.Ctx) error
	UploadLogo(ctx *fiber.Ctx) error
}

type venueController struct {
	venues   service.IVenueService
	sessions serverutils.SessionResolver
}

func NewVenueController(venues service.IVenueService, sessions serverutils.SessionResolver) IVenueController {
	return &venueController{
		venues:   venues,
		sessions: sessions,
	}
}

func (c *venueController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/venue", serverutils.SessionMiddleware(c.sessions))
	h.Get("/", c.Get)
	h.Put("/settings", c.UpdateSettings)
	h.Post("/menu", c.UploadMenu)
	h.Post("/logo", c.UploadLogo)
}

func (c *venueController) Get(ctx *fiber.Ctx) error {
	res, err := c.venues.Get(ctx.Context(), venueIdFromLocals(ctx))
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching venue", res))
}

func (c *venueController) UpdateSettings(ctx *fiber.Ctx) error {
	var req dto.VenueSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.venues.UpdateSettings(ctx.Context(), venueIdFromLocals(ctx), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Settings updated", res))
}

func (c *venueController) UploadMenu(ctx *fiber.Ctx) error {
	data, filename, err := readUpload(ctx)
	if err != nil {
		return err
	}

	if err := c.venues.UploadMenu(ctx.Context(), venueIdFromLocals(ctx), data, filename); err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Menu uploaded", nil))
}

func (c *venueController) UploadLogo(ctx *fiber.Ctx) error {
	data, filename, err := readUpload(ctx)
	if err != nil {
		return err
	}

	if err := c.venues.UploadLogo(ctx.Context(), venueIdFromLocals(ctx), data, filename); err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logo uploaded", nil))
}

func readUpload(ctx *fiber.Ctx) ([]byte, string, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "file field is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	return data, fileHeader.Filename, nil
}
