package service

import (
	"context"
	"fmt"
	"time"

	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/pkg/logger"
	"pawhaven-be/internal/repository/specification"
	"pawhaven-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const inboxLimit = 100

type IMessageService interface {
	Send(ctx context.Context, senderId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.MessageWithNamesResponse, error)
	GetConversation(ctx context.Context, userId, otherUserId uuid.UUID) ([]*dto.MessageWithNamesResponse, error)
	MarkRead(ctx context.Context, messageId, receiverId uuid.UUID) error
}

type messageService struct {
	uowFactory   unitofwork.RepositoryFactory
	notifService *NotificationService
	logger       logger.ILogger
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, notifService *NotificationService, log logger.ILogger) IMessageService {
	return &messageService{
		uowFactory:   uowFactory,
		notifService: notifService,
		logger:       log,
	}
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:                m.Id,
		SenderId:          m.SenderId,
		ReceiverId:        m.ReceiverId,
		Content:           m.Content,
		AdoptionRequestId: m.AdoptionRequestId,
		IsRead:            m.IsRead,
		CreatedAt:         m.CreatedAt,
	}
}

func toMessageWithNames(rows []*entity.MessageWithNames) []*dto.MessageWithNamesResponse {
	result := make([]*dto.MessageWithNamesResponse, len(rows))
	for i, m := range rows {
		result[i] = &dto.MessageWithNamesResponse{
			MessageResponse: *toMessageResponse(&m.Message),
			SenderName:      m.SenderName,
			ReceiverName:    m.ReceiverName,
		}
	}
	return result
}

func (s *messageService) Send(ctx context.Context, senderId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sender, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: senderId})
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserNotFound
	}

	receiver, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.ReceiverId})
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrUserNotFound
	}

	message := &entity.Message{
		Id:                uuid.New(),
		SenderId:          senderId,
		ReceiverId:        req.ReceiverId,
		Content:           req.Content,
		AdoptionRequestId: req.AdoptionRequestId,
		IsRead:            false,
		CreatedAt:         time.Now(),
	}

	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	// Inline alert for the receiver. Message delivery already succeeded,
	// so a failed notification is only logged.
	link := "/messages"
	notifErr := s.notifService.Notify(ctx, receiver.Id, "info",
		"New Message",
		fmt.Sprintf("You have a new message from %s", sender.FullName),
		&link,
		map[string]interface{}{
			"message_id": message.Id.String(),
			"sender_id":  senderId.String(),
		})
	if notifErr != nil {
		s.logger.Warn("MessageService", "Failed to notify receiver of new message", map[string]interface{}{
			"receiver_id": receiver.Id.String(),
			"error":       notifErr.Error(),
		})
	}

	return toMessageResponse(message), nil
}

func (s *messageService) ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.MessageWithNamesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.MessageRepository().FindLatestForUser(ctx, userId, inboxLimit)
	if err != nil {
		return nil, err
	}
	return toMessageWithNames(rows), nil
}

func (s *messageService) GetConversation(ctx context.Context, userId, otherUserId uuid.UUID) ([]*dto.MessageWithNamesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.MessageRepository().FindConversation(ctx, userId, otherUserId)
	if err != nil {
		return nil, err
	}
	return toMessageWithNames(rows), nil
}

func (s *messageService) MarkRead(ctx context.Context, messageId, receiverId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.MessageRepository().MarkRead(ctx, messageId, receiverId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}
