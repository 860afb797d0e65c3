package contract

import (
	"context"

	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Favorite, error)

	// DeleteByIdAndOwner reports how many rows were removed so the caller
	// can distinguish not-found from success.
	DeleteByIdAndOwner(ctx context.Context, id, userId uuid.UUID) (int64, error)

	FindAllWithPet(ctx context.Context, userId uuid.UUID) ([]*entity.FavoriteWithPet, error)
}
