// FILE: internal/controller/auth_controller.go
package controller

import (
	"qrcapture-be/internal/dto"
	"qrcapture-be/internal/pkg/serverutils"
	"qrcapture-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	sessions service.ISessionService
}

func NewAuthController(sessions service.ISessionService) IAuthController {
	return &authController{sessions: sessions}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.sessions.Login(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Logged in", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		c.sessions.Logout(authHeader[7:])
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}
