package controller

import (
	"errors"

	"pawhaven-be/internal/pkg/serverutils"
	"pawhaven-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps service sentinel errors to HTTP responses so every
// handler reports the same status for the same failure.
func respondError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPetNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrFavoriteNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))

	case errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrAlreadyFavorite),
		errors.Is(err, service.ErrAlreadyReviewed),
		errors.Is(err, service.ErrNoFieldsToSet),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidToken):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountInactive):
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
}

// currentUserId reads the authenticated user id set by the JWT middleware.
func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}
