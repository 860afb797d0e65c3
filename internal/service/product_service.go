package service

import (
	"context"
	"time"

	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/pkg/logger"
	"pawhaven-be/internal/repository/specification"
	"pawhaven-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProductService interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, query *dto.ListProductsQuery) ([]*dto.ProductResponse, error)
}

type productService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewProductService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IProductService {
	return &productService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
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

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	gender := entity.GenderUnknown
	if req.Gender != "" {
		gender = entity.ProductGender(req.Gender)
	}

	// New listings always start out available regardless of input.
	product := &entity.Product{
		Id:                uuid.New(),
		Name:              req.Name,
		Species:           req.Species,
		Breed:             req.Breed,
		Age:               req.Age,
		Gender:            gender,
		Price:             req.Price,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		Location:          req.Location,
		MedicalHistory:    req.MedicalHistory,
		PersonalityTraits: req.PersonalityTraits,
		Category:          entity.ProductCategory(req.Category),
		Status:            entity.ProductStatusAvailable,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Species != nil {
		fields["species"] = *req.Species
	}
	if req.Breed != nil {
		fields["breed"] = *req.Breed
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.MedicalHistory != nil {
		fields["medical_history"] = *req.MedicalHistory
	}
	if req.PersonalityTraits != nil {
		fields["personality_traits"] = *req.PersonalityTraits
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToSet
	}
	fields["updated_at"] = time.Now()

	rows, err := uow.ProductRepository().UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPetNotFound
	}

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrPetNotFound
	}

	return toProductResponse(product), nil
}

// Delete removes a listing along with its adoption requests. Both go in
// one transaction so a failed product delete never orphans the requests.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if product == nil {
		return ErrPetNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.AdoptionRepository().DeleteByProduct(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}

	return uow.Commit()
}

func (s *productService) GetById(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrPetNotFound
	}

	return toProductResponse(product), nil
}

func (s *productService) List(ctx context.Context, query *dto.ListProductsQuery) ([]*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if query != nil && query.Category != "" {
		specs = append(specs, specification.ByCategory{Category: query.Category})
	}
	if query != nil && query.Status != "" {
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		result[i] = toProductResponse(p)
	}
	return result, nil
}
