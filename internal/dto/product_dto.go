package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=255"`
	Species           string  `json:"species" validate:"required,min=1,max=100"`
	Breed             *string `json:"breed" validate:"omitempty,max=100"`
	Age               *int    `json:"age" validate:"omitempty,min=0"`
	Gender            string  `json:"gender" validate:"omitempty,oneof=male female unknown"`
	Price             float64 `json:"price" validate:"min=0"`
	Description       *string `json:"description"`
	ImageURL          *string `json:"image_url" validate:"omitempty,url"`
	Location          *string `json:"location" validate:"omitempty,max=255"`
	MedicalHistory    *string `json:"medical_history"`
	PersonalityTraits *string `json:"personality_traits"`
	Category          string  `json:"category" validate:"required,oneof=dogs cats special-needs"`
}

type UpdateProductRequest struct {
	Name              *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Species           *string  `json:"species" validate:"omitempty,min=1,max=100"`
	Breed             *string  `json:"breed" validate:"omitempty,max=100"`
	Age               *int     `json:"age" validate:"omitempty,min=0"`
	Gender            *string  `json:"gender" validate:"omitempty,oneof=male female unknown"`
	Price             *float64 `json:"price" validate:"omitempty,min=0"`
	Description       *string  `json:"description"`
	ImageURL          *string  `json:"image_url" validate:"omitempty,url"`
	Location          *string  `json:"location" validate:"omitempty,max=255"`
	MedicalHistory    *string  `json:"medical_history"`
	PersonalityTraits *string  `json:"personality_traits"`
	Category          *string  `json:"category" validate:"omitempty,oneof=dogs cats special-needs"`
	Status            *string  `json:"status" validate:"omitempty,oneof=available pending adopted"`
}

type ProductResponse struct {
	Id                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Species           string    `json:"species"`
	Breed             *string   `json:"breed,omitempty"`
	Age               *int      `json:"age,omitempty"`
	Gender            string    `json:"gender"`
	Price             float64   `json:"price"`
	Description       *string   `json:"description,omitempty"`
	ImageURL          *string   `json:"image_url,omitempty"`
	Location          *string   `json:"location,omitempty"`
	MedicalHistory    *string   `json:"medical_history,omitempty"`
	PersonalityTraits *string   `json:"personality_traits,omitempty"`
	Category          string    `json:"category"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ListProductsQuery struct {
	Category string `query:"category"`
	Status   string `query:"status"`
}
