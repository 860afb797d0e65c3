package implementation

import (
	"context"

	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/mapper"
	"pawhaven-be/internal/model"
	"pawhaven-be/internal/repository/contract"
	"pawhaven-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentRepositoryImpl) FindTeamMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var models []*model.TeamMember
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TeamMembersToEntities(models), nil
}

func (r *ContentRepositoryImpl) FindHistoryEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryEvent, error) {
	var models []*model.HistoryEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.HistoryEventsToEntities(models), nil
}

func (r *ContentRepositoryImpl) FindCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CategoriesToEntities(models), nil
}

func (r *ContentRepositoryImpl) FindSettings(ctx context.Context) ([]*entity.Setting, error) {
	var models []*model.Setting
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	settings := make([]*entity.Setting, len(models))
	for i, m := range models {
		settings[i] = r.mapper.SettingToEntity(m)
	}
	return settings, nil
}

func (r *ContentRepositoryImpl) CreateContactSubmission(ctx context.Context, submission *entity.ContactSubmission) error {
	m := r.mapper.ContactSubmissionToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.ContactSubmissionToEntity(m)
	return nil
}
