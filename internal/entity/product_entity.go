package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProductGender string
type ProductCategory string
type ProductStatus string

const (
	GenderMale    ProductGender = "male"
	GenderFemale  ProductGender = "female"
	GenderUnknown ProductGender = "unknown"

	CategoryDogs         ProductCategory = "dogs"
	CategoryCats         ProductCategory = "cats"
	CategorySpecialNeeds ProductCategory = "special-needs"

	ProductStatusAvailable ProductStatus = "available"
	ProductStatusPending   ProductStatus = "pending"
	ProductStatusAdopted   ProductStatus = "adopted"
)

// Product is a pet listed for adoption. The naming follows the storefront
// heritage of the catalog tables.
type Product struct {
	Id                uuid.UUID
	Name              string
	Species           string
	Breed             *string
	Age               *int
	Gender            ProductGender
	Price             float64
	Description       *string
	ImageURL          *string
	Location          *string
	MedicalHistory    *string
	PersonalityTraits *string
	Category          ProductCategory
	Status            ProductStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
