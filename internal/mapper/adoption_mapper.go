package mapper

import (
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/model"
)

type AdoptionMapper struct{}

func NewAdoptionMapper() *AdoptionMapper {
	return &AdoptionMapper{}
}

func (m *AdoptionMapper) ToEntity(a *model.AdoptionRequest) *entity.AdoptionRequest {
	if a == nil {
		return nil
	}
	return &entity.AdoptionRequest{
		Id:            a.Id,
		UserId:        a.UserId,
		ProductId:     a.ProductId,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		Notes:         a.Notes,
		Status:        entity.AdoptionStatus(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *AdoptionMapper) ToModel(a *entity.AdoptionRequest) *model.AdoptionRequest {
	if a == nil {
		return nil
	}
	return &model.AdoptionRequest{
		Id:            a.Id,
		UserId:        a.UserId,
		ProductId:     a.ProductId,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		Notes:         a.Notes,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *AdoptionMapper) ToEntities(requests []*model.AdoptionRequest) []*entity.AdoptionRequest {
	entities := make([]*entity.AdoptionRequest, len(requests))
	for i, a := range requests {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
