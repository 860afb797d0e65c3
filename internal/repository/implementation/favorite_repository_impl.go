package implementation

import (
	"context"
	"errors"

	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/mapper"
	"pawhaven-be/internal/model"
	"pawhaven-be/internal/repository/contract"
	"pawhaven-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FavoriteMapper
}

func NewFavoriteRepository(db *gorm.DB) contract.FavoriteRepository {
	return &FavoriteRepositoryImpl{
		db:     db,
		mapper: mapper.NewFavoriteMapper(),
	}
}

func (r *FavoriteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FavoriteRepositoryImpl) Create(ctx context.Context, favorite *entity.Favorite) error {
	m := r.mapper.ToModel(favorite)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*favorite = *r.mapper.ToEntity(m)
	return nil
}

func (r *FavoriteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Favorite, error) {
	var m model.Favorite
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *FavoriteRepositoryImpl) DeleteByIdAndOwner(ctx context.Context, id, userId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.Favorite{})
	return result.RowsAffected, result.Error
}

func (r *FavoriteRepositoryImpl) FindAllWithPet(ctx context.Context, userId uuid.UUID) ([]*entity.FavoriteWithPet, error) {
	var rows []struct {
		model.Favorite
		PetName   string  `gorm:"column:pet_name"`
		PetBreed  *string `gorm:"column:pet_breed"`
		PetImage  *string `gorm:"column:pet_image"`
		PetPrice  float64 `gorm:"column:pet_price"`
		PetStatus string  `gorm:"column:pet_status"`
	}

	err := r.db.WithContext(ctx).Table("favorites").
		Select("favorites.*, products.name as pet_name, products.breed as pet_breed, products.image_url as pet_image, products.price as pet_price, products.status as pet_status").
		Joins("JOIN products ON products.id = favorites.product_id").
		Where("favorites.user_id = ?", userId).
		Order("favorites.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.FavoriteWithPet, len(rows))
	for i, row := range rows {
		result[i] = &entity.FavoriteWithPet{
			Favorite:  *r.mapper.ToEntity(&row.Favorite),
			PetName:   row.PetName,
			PetBreed:  row.PetBreed,
			PetImage:  row.PetImage,
			PetPrice:  row.PetPrice,
			PetStatus: entity.ProductStatus(row.PetStatus),
		}
	}
	return result, nil
}
