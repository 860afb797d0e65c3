// FILE: internal/controller/user_controller.go
package controller

import (
	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/pkg/serverutils"
	"pawhaven-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IUserController groups the authenticated marketplace endpoints that
// belong to the current user: adoption requests, favorites and reviews.
type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetAdoptionRequests(ctx *fiber.Ctx) error
	CreateAdoptionRequest(ctx *fiber.Ctx) error
	GetFavorites(ctx *fiber.Ctx) error
	AddFavorite(ctx *fiber.Ctx) error
	RemoveFavorite(ctx *fiber.Ctx) error
	GetReviews(ctx *fiber.Ctx) error
	CreateReview(ctx *fiber.Ctx) error
}

type userController struct {
	adoptionService service.IAdoptionService
	favoriteService service.IFavoriteService
	reviewService   service.IReviewService
}

func NewUserController(adoptionService service.IAdoptionService, favoriteService service.IFavoriteService, reviewService service.IReviewService) IUserController {
	return &userController{
		adoptionService: adoptionService,
		favoriteService: favoriteService,
		reviewService:   reviewService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(serverutils.JwtMiddleware)

	h.Get("/adoption-requests", c.GetAdoptionRequests)
	h.Post("/adoption-requests", c.CreateAdoptionRequest)

	h.Get("/favorites", c.GetFavorites)
	h.Post("/favorites", c.AddFavorite)
	h.Delete("/favorites/:id", c.RemoveFavorite)

	h.Get("/reviews", c.GetReviews)
	h.Post("/reviews", c.CreateReview)
}

func (c *userController) GetAdoptionRequests(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.adoptionService.ListForUser(ctx.Context(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User adoption requests", res))
}

func (c *userController) CreateAdoptionRequest(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateAdoptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adoptionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Adoption request submitted", res))
}

func (c *userController) GetFavorites(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.favoriteService.ListForUser(ctx.Context(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User favorites", res))
}

func (c *userController) AddFavorite(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.AddFavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.favoriteService.Add(ctx.Context(), userId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Added to favorites", res))
}

func (c *userController) RemoveFavorite(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	favoriteId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid favorite ID"))
	}

	if err := c.favoriteService.Remove(ctx.Context(), userId, favoriteId); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Removed from favorites", nil))
}

func (c *userController) GetReviews(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.reviewService.ListForUser(ctx.Context(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User reviews", res))
}

func (c *userController) CreateReview(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Review submitted", res))
}
