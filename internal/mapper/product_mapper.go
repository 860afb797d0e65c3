package mapper

import (
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:                p.Id,
		Name:              p.Name,
		Species:           p.Species,
		Breed:             p.Breed,
		Age:               p.Age,
		Gender:            entity.ProductGender(p.Gender),
		Price:             p.Price,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		Location:          p.Location,
		MedicalHistory:    p.MedicalHistory,
		PersonalityTraits: p.PersonalityTraits,
		Category:          entity.ProductCategory(p.Category),
		Status:            entity.ProductStatus(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:                p.Id,
		Name:              p.Name,
		Species:           p.Species,
		Breed:             p.Breed,
		Age:               p.Age,
		Gender:            string(p.Gender),
		Price:             p.Price,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		Location:          p.Location,
		MedicalHistory:    p.MedicalHistory,
		PersonalityTraits: p.PersonalityTraits,
		Category:          string(p.Category),
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
