// FILE: internal/controller/message_controller.go
package controller

import (
	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/pkg/serverutils"
	"pawhaven-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
}

type messageController struct {
	service service.IMessageService
}

func NewMessageController(service service.IMessageService) IMessageController {
	return &messageController{service: service}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/messages")
	h.Use(serverutils.JwtMiddleware)

	h.Get("/", c.List)
	h.Get("/conversation/:userId", c.GetConversation)
	h.Post("/", c.Send)
	h.Put("/:id/read", c.MarkRead)
}

func (c *messageController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.service.ListForUser(ctx.Context(), userId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User messages", res))
}

func (c *messageController) GetConversation(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	otherUserId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	res, err := c.service.GetConversation(ctx.Context(), userId, otherUserId)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation", res))
}

func (c *messageController) Send(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.Context(), userId, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *messageController) MarkRead(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	messageId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid message ID"))
	}

	if err := c.service.MarkRead(ctx.Context(), messageId, userId); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Message marked as read", nil))
}
