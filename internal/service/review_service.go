package service

import (
	"context"
	"time"

	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/repository/specification"
	"pawhaven-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReviewService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.ReviewWithPetResponse, error)
}

type reviewService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory) IReviewService {
	return &reviewService{uowFactory: uowFactory}
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:        r.Id,
		UserId:    r.UserId,
		ProductId: r.ProductId,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (s *reviewService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pet, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.ProductId})
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	existing, err := uow.ReviewRepository().FindOne(ctx,
		specification.ByUserAndProduct{UserID: userId, ProductID: req.ProductId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &entity.Review{
		Id:        uuid.New(),
		UserId:    userId,
		ProductId: req.ProductId,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := uow.ReviewRepository().Create(ctx, review); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.ReviewWithPetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.ReviewRepository().FindAllWithPet(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ReviewWithPetResponse, len(reviews))
	for i, r := range reviews {
		result[i] = &dto.ReviewWithPetResponse{
			ReviewResponse: *toReviewResponse(&r.Review),
			PetName:        r.PetName,
			PetImage:       r.PetImage,
		}
	}
	return result, nil
}
