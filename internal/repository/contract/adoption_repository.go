package contract

import (
	"context"

	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdoptionRepository interface {
	Create(ctx context.Context, request *entity.AdoptionRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdoptionRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdoptionRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindAllWithPet returns a user's requests joined with the pet name
	// and image, newest first.
	FindAllWithPet(ctx context.Context, userId uuid.UUID) ([]*entity.AdoptionRequestWithPet, error)

	// UpdateStatus is the seam for the review workflow. No HTTP route
	// drives it yet.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AdoptionStatus) error

	// DeleteByProduct removes all requests for a pet. Used inside the
	// product delete transaction.
	DeleteByProduct(ctx context.Context, productId uuid.UUID) error
}
