package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddFavoriteRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
}

type FavoriteResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	ProductId uuid.UUID `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoriteWithPetResponse struct {
	FavoriteResponse
	PetName   string  `json:"pet_name"`
	PetBreed  *string `json:"pet_breed,omitempty"`
	PetImage  *string `json:"pet_image,omitempty"`
	PetPrice  float64 `json:"pet_price"`
	PetStatus string  `json:"pet_status"`
}
