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

type AdoptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdoptionMapper
}

func NewAdoptionRepository(db *gorm.DB) contract.AdoptionRepository {
	return &AdoptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdoptionMapper(),
	}
}

func (r *AdoptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdoptionRepositoryImpl) Create(ctx context.Context, request *entity.AdoptionRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdoptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdoptionRequest, error) {
	var m model.AdoptionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *AdoptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdoptionRequest, error) {
	var models []*model.AdoptionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *AdoptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AdoptionRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AdoptionRepositoryImpl) FindAllWithPet(ctx context.Context, userId uuid.UUID) ([]*entity.AdoptionRequestWithPet, error) {
	var rows []struct {
		model.AdoptionRequest
		PetName  string  `gorm:"column:pet_name"`
		PetImage *string `gorm:"column:pet_image"`
	}

	err := r.db.WithContext(ctx).Table("adoption_requests").
		Select("adoption_requests.*, products.name as pet_name, products.image_url as pet_image").
		Joins("JOIN products ON products.id = adoption_requests.product_id").
		Where("adoption_requests.user_id = ?", userId).
		Order("adoption_requests.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.AdoptionRequestWithPet, len(rows))
	for i, row := range rows {
		result[i] = &entity.AdoptionRequestWithPet{
			AdoptionRequest: *r.mapper.ToEntity(&row.AdoptionRequest),
			PetName:         row.PetName,
			PetImage:        row.PetImage,
		}
	}
	return result, nil
}

func (r *AdoptionRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AdoptionStatus) error {
	result := r.db.WithContext(ctx).Model(&model.AdoptionRequest{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("adoption request not found")
	}
	return nil
}

func (r *AdoptionRepositoryImpl) DeleteByProduct(ctx context.Context, productId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productId).Delete(&model.AdoptionRequest{}).Error
}
