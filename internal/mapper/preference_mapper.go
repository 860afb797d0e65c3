package mapper

import (
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/model"
)

type PreferenceMapper struct{}

func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

func (m *PreferenceMapper) ToEntity(p *model.UserPreferences) *entity.UserPreferences {
	if p == nil {
		return nil
	}
	return &entity.UserPreferences{
		Id:              p.Id,
		UserId:          p.UserId,
		Email:           p.Email,
		Push:            p.Push,
		Sms:             p.Sms,
		Marketing:       p.Marketing,
		AdoptionUpdates: p.AdoptionUpdates,
		MessageAlerts:   p.MessageAlerts,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *PreferenceMapper) ToModel(p *entity.UserPreferences) *model.UserPreferences {
	if p == nil {
		return nil
	}
	return &model.UserPreferences{
		Id:              p.Id,
		UserId:          p.UserId,
		Email:           p.Email,
		Push:            p.Push,
		Sms:             p.Sms,
		Marketing:       p.Marketing,
		AdoptionUpdates: p.AdoptionUpdates,
		MessageAlerts:   p.MessageAlerts,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
