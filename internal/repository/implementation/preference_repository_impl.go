package implementation

import (
	"context"
	"errors"

	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/mapper"
	"pawhaven-be/internal/model"
	"pawhaven-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PreferenceMapper
}

func NewPreferenceRepository(db *gorm.DB) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewPreferenceMapper(),
	}
}

func (r *PreferenceRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) (*entity.UserPreferences, error) {
	var m model.UserPreferences
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PreferenceRepositoryImpl) Create(ctx context.Context, prefs *entity.UserPreferences) error {
	m := r.mapper.ToModel(prefs)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*prefs = *r.mapper.ToEntity(m)
	return nil
}

func (r *PreferenceRepositoryImpl) Update(ctx context.Context, prefs *entity.UserPreferences) error {
	m := r.mapper.ToModel(prefs)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*prefs = *r.mapper.ToEntity(m)
	return nil
}
