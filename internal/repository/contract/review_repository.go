package contract

import (
	"context"

	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error)
	FindAllWithPet(ctx context.Context, userId uuid.UUID) ([]*entity.ReviewWithPet, error)
}
