package service

import (
	"context"
	"time"

	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPreferenceService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.PreferencesResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error)
}

type preferenceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPreferenceService(uowFactory unitofwork.RepositoryFactory) IPreferenceService {
	return &preferenceService{uowFactory: uowFactory}
}

func toPreferencesResponse(p *entity.UserPreferences) *dto.PreferencesResponse {
	return &dto.PreferencesResponse{
		Email:           p.Email,
		Push:            p.Push,
		Sms:             p.Sms,
		Marketing:       p.Marketing,
		AdoptionUpdates: p.AdoptionUpdates,
		MessageAlerts:   p.MessageAlerts,
	}
}

// Get lazily creates the row with defaults on first read.
func (s *preferenceService) Get(ctx context.Context, userId uuid.UUID) (*dto.PreferencesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prefs, err := uow.PreferenceRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = entity.DefaultPreferences(userId)
		prefs.CreatedAt = time.Now()
		prefs.UpdatedAt = time.Now()
		if err := uow.PreferenceRepository().Create(ctx, prefs); err != nil {
			return nil, err
		}
	}

	return toPreferencesResponse(prefs), nil
}

func (s *preferenceService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	if !req.HasAny() {
		return nil, ErrNoFieldsToSet
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	prefs, err := uow.PreferenceRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = entity.DefaultPreferences(userId)
		prefs.CreatedAt = time.Now()
		prefs.UpdatedAt = time.Now()
		if err := uow.PreferenceRepository().Create(ctx, prefs); err != nil {
			return nil, err
		}
	}

	if req.Email != nil {
		prefs.Email = *req.Email
	}
	if req.Push != nil {
		prefs.Push = *req.Push
	}
	if req.Sms != nil {
		prefs.Sms = *req.Sms
	}
	if req.Marketing != nil {
		prefs.Marketing = *req.Marketing
	}
	if req.AdoptionUpdates != nil {
		prefs.AdoptionUpdates = *req.AdoptionUpdates
	}
	if req.MessageAlerts != nil {
		prefs.MessageAlerts = *req.MessageAlerts
	}
	prefs.UpdatedAt = time.Now()

	if err := uow.PreferenceRepository().Update(ctx, prefs); err != nil {
		return nil, err
	}

	return toPreferencesResponse(prefs), nil
}
