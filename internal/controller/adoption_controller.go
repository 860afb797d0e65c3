// FILE: internal/controller/adoption_controller.go
package controller

import (
	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/pkg/serverutils"
	"pawhaven-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IAdoptionController exposes the short adoption route. It shares the
// create operation with the /user/adoption-requests route so both behave
// identically.
type IAdoptionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
}

type adoptionController struct {
	service service.IAdoptionService
}

func NewAdoptionController(service service.IAdoptionService) IAdoptionController {
	return &adoptionController{service: service}
}

func (c *adoptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/adoptions")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Create)
}

func (c *adoptionController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateAdoptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Adoption request submitted", res))
}
