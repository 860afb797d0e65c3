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

type IFavoriteService interface {
	Add(ctx context.Context, userId uuid.UUID, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error)
	Remove(ctx context.Context, userId, favoriteId uuid.UUID) error
	ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.FavoriteWithPetResponse, error)
}

type favoriteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFavoriteService(uowFactory unitofwork.RepositoryFactory) IFavoriteService {
	return &favoriteService{uowFactory: uowFactory}
}

func toFavoriteResponse(f *entity.Favorite) *dto.FavoriteResponse {
	return &dto.FavoriteResponse{
		Id:        f.Id,
		UserId:    f.UserId,
		ProductId: f.ProductId,
		CreatedAt: f.CreatedAt,
	}
}

func (s *favoriteService) Add(ctx context.Context, userId uuid.UUID, req *dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pet, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.ProductId})
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	existing, err := uow.FavoriteRepository().FindOne(ctx,
		specification.ByUserAndProduct{UserID: userId, ProductID: req.ProductId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyFavorite
	}

	favorite := &entity.Favorite{
		Id:        uuid.New(),
		UserId:    userId,
		ProductId: req.ProductId,
		CreatedAt: time.Now(),
	}

	if err := uow.FavoriteRepository().Create(ctx, favorite); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	return toFavoriteResponse(favorite), nil
}

func (s *favoriteService) Remove(ctx context.Context, userId, favoriteId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.FavoriteRepository().DeleteByIdAndOwner(ctx, favoriteId, userId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *favoriteService) ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.FavoriteWithPetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	favorites, err := uow.FavoriteRepository().FindAllWithPet(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FavoriteWithPetResponse, len(favorites))
	for i, f := range favorites {
		result[i] = &dto.FavoriteWithPetResponse{
			FavoriteResponse: *toFavoriteResponse(&f.Favorite),
			PetName:          f.PetName,
			PetBreed:         f.PetBreed,
			PetImage:         f.PetImage,
			PetPrice:         f.PetPrice,
			PetStatus:        string(f.PetStatus),
		}
	}
	return result, nil
}
