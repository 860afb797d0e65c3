package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string   `json:"comment"`
}

type ReviewResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	ProductId uuid.UUID `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewWithPetResponse struct {
	ReviewResponse
	PetName  string  `json:"pet_name"`
	PetImage *string `json:"pet_image,omitempty"`
}
