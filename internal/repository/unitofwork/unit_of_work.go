package unitofwork

import (
	"context"

	"pawhaven-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProductRepository() contract.ProductRepository
	AdoptionRepository() contract.AdoptionRepository
	FavoriteRepository() contract.FavoriteRepository
	ReviewRepository() contract.ReviewRepository
	MessageRepository() contract.MessageRepository
	PreferenceRepository() contract.PreferenceRepository
	ContentRepository() contract.ContentRepository
}
