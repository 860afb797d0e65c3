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

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *ReviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*review = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error) {
	var m model.Review
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ReviewRepositoryImpl) FindAllWithPet(ctx context.Context, userId uuid.UUID) ([]*entity.ReviewWithPet, error) {
	var rows []struct {
		model.Review
		PetName  string  `gorm:"column:pet_name"`
		PetImage *string `gorm:"column:pet_image"`
	}

	err := r.db.WithContext(ctx).Table("reviews").
		Select("reviews.*, products.name as pet_name, products.image_url as pet_image").
		Joins("JOIN products ON products.id = reviews.product_id").
		Where("reviews.user_id = ?", userId).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.ReviewWithPet, len(rows))
	for i, row := range rows {
		result[i] = &entity.ReviewWithPet{
			Review:   *r.mapper.ToEntity(&row.Review),
			PetName:  row.PetName,
			PetImage: row.PetImage,
		}
	}
	return result, nil
}
