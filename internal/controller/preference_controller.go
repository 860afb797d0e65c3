// FILE: internal/controller/preference_controller.go
package controller

import (
	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/pkg/serverutils"
	"pawhaven-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service service.IPreferenceService
}

func NewPreferenceController(service service.IPreferenceService) IPreferenceController {
	return &preferenceController{service: service}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preferences")
	h.Use(serverutils.JwtMiddleware)

	h.Get("/", c.Get)
	h.Put("/", c.Update)
}

func (c *preferenceController) Get(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.service.Get(ctx.Context(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Notification preferences", res))
}

func (c *preferenceController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UpdatePreferencesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), userId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Preferences updated", res))
}
