package mapper

import (
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/model"
)

type FavoriteMapper struct{}

func NewFavoriteMapper() *FavoriteMapper {
	return &FavoriteMapper{}
}

func (m *FavoriteMapper) ToEntity(f *model.Favorite) *entity.Favorite {
	if f == nil {
		return nil
	}
	return &entity.Favorite{
		Id:        f.Id,
		UserId:    f.UserId,
		ProductId: f.ProductId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FavoriteMapper) ToModel(f *entity.Favorite) *model.Favorite {
	if f == nil {
		return nil
	}
	return &model.Favorite{
		Id:        f.Id,
		UserId:    f.UserId,
		ProductId: f.ProductId,
		CreatedAt: f.CreatedAt,
	}
}
