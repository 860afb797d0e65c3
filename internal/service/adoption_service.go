package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/pkg/logger"
	"pawhaven-be/internal/repository/specification"
	"pawhaven-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type IAdoptionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAdoptionRequest) (*dto.AdoptionRequestResponse, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.AdoptionRequestWithPetResponse, error)
}

type adoptionService struct {
	uowFactory   unitofwork.RepositoryFactory
	notifService *NotificationService
	mailQueue    IPublisherService
	logger       logger.ILogger
}

func NewAdoptionService(uowFactory unitofwork.RepositoryFactory, notifService *NotificationService, mailQueue IPublisherService, log logger.ILogger) IAdoptionService {
	return &adoptionService{
		uowFactory:   uowFactory,
		notifService: notifService,
		mailQueue:    mailQueue,
		logger:       log,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toAdoptionResponse(a *entity.AdoptionRequest) *dto.AdoptionRequestResponse {
	return &dto.AdoptionRequestResponse{
		Id:            a.Id,
		UserId:        a.UserId,
		ProductId:     a.ProductId,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		Notes:         a.Notes,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (s *adoptionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAdoptionRequest) (*dto.AdoptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	pet, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.ProductId})
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	// Pre-check for an open request. The partial unique index backs this
	// up against concurrent submissions.
	count, err := uow.AdoptionRepository().Count(ctx,
		specification.ByUserAndProduct{UserID: userId, ProductID: req.ProductId},
		specification.NonTerminalStatus{},
	)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateRequest
	}

	request := &entity.AdoptionRequest{
		Id:            uuid.New(),
		UserId:        userId,
		ProductId:     req.ProductId,
		CustomerName:  user.FullName,
		CustomerEmail: user.Email,
		Notes:         req.Notes,
		Status:        entity.AdoptionStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.AdoptionRepository().Create(ctx, request); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	// Best-effort side effects. Failures are logged and never fail the
	// request itself.
	s.notifyAdmins(ctx, uow, user, pet, request)

	if s.mailQueue != nil {
		mailErr := s.mailQueue.QueueEmail(ctx, dto.SendEmailMessage{
			Kind:    dto.EmailKindAdoptionReceipt,
			To:      user.Email,
			Name:    user.FullName,
			PetName: pet.Name,
		})
		if mailErr != nil {
			s.logger.Warn("AdoptionService", "Failed to queue adoption receipt email", map[string]interface{}{"error": mailErr.Error()})
		}
	}

	return toAdoptionResponse(request), nil
}

func (s *adoptionService) notifyAdmins(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, pet *entity.Product, request *entity.AdoptionRequest) {
	admins, err := uow.UserRepository().FindAll(ctx, specification.ByRole{Role: "admin"})
	if err != nil {
		s.logger.Error("AdoptionService", "Failed to resolve admins for adoption fan-out", map[string]interface{}{"error": err.Error()})
		return
	}

	title := "New Adoption Request"
	message := fmt.Sprintf("%s wants to adopt %s", user.FullName, pet.Name)
	metadata := map[string]interface{}{
		"adoption_request_id": request.Id.String(),
		"product_id":          pet.Id.String(),
		"user_id":             user.Id.String(),
	}

	for _, admin := range admins {
		if err := s.notifService.Notify(ctx, admin.Id, "info", title, message, nil, metadata); err != nil {
			s.logger.Error("AdoptionService", "Failed to notify admin of adoption request", map[string]interface{}{
				"admin_id": admin.Id.String(),
				"error":    err.Error(),
			})
		}
	}
}

func (s *adoptionService) ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.AdoptionRequestWithPetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.AdoptionRepository().FindAllWithPet(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdoptionRequestWithPetResponse, len(requests))
	for i, r := range requests {
		result[i] = &dto.AdoptionRequestWithPetResponse{
			AdoptionRequestResponse: *toAdoptionResponse(&r.AdoptionRequest),
			PetName:                 r.PetName,
			PetImage:                r.PetImage,
		}
	}
	return result, nil
}
