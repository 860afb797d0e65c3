// FILE: internal/controller/general_controller.go
package controller

import (
	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/pkg/serverutils"
	"pawhaven-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IGeneralController serves the public site content: settings, team,
// history, categories and the contact form.
type IGeneralController interface {
	RegisterRoutes(r fiber.Router)
	GetSettings(ctx *fiber.Ctx) error
	GetTeam(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetAboutTeam(ctx *fiber.Ctx) error
	GetAboutHistory(ctx *fiber.Ctx) error
	GetCategories(ctx *fiber.Ctx) error
	SubmitContact(ctx *fiber.Ctx) error
}

type generalController struct {
	service service.IContentService
}

func NewGeneralController(service service.IContentService) IGeneralController {
	return &generalController{service: service}
}

func (c *generalController) RegisterRoutes(r fiber.Router) {
	r.Get("/settings", c.GetSettings)
	r.Get("/team", c.GetTeam)
	r.Get("/history", c.GetHistory)
	r.Get("/categories", c.GetCategories)
	r.Post("/contact", c.SubmitContact)

	// The about page shows everything including inactive entries
	r.Get("/about/team", c.GetAboutTeam)
	r.Get("/about/history", c.GetAboutHistory)
}

func (c *generalController) GetSettings(ctx *fiber.Ctx) error {
	res, err := c.service.GetSettings(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Site settings", res))
}

func (c *generalController) GetTeam(ctx *fiber.Ctx) error {
	res, err := c.service.GetTeamMembers(ctx.Context(), true)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Team members", res))
}

func (c *generalController) GetHistory(ctx *fiber.Ctx) error {
	res, err := c.service.GetHistoryEvents(ctx.Context(), true)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("History events", res))
}

func (c *generalController) GetAboutTeam(ctx *fiber.Ctx) error {
	res, err := c.service.GetTeamMembers(ctx.Context(), false)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Team members", res))
}

func (c *generalController) GetAboutHistory(ctx *fiber.Ctx) error {
	res, err := c.service.GetHistoryEvents(ctx.Context(), false)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("History events", res))
}

func (c *generalController) GetCategories(ctx *fiber.Ctx) error {
	res, err := c.service.GetCategories(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories", res))
}

func (c *generalController) SubmitContact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitContact(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Contact submission received", res))
}
