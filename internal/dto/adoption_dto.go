package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAdoptionRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
	Notes     *string   `json:"notes"`
}

type AdoptionRequestResponse struct {
	Id            uuid.UUID `json:"id"`
	UserId        uuid.UUID `json:"user_id"`
	ProductId     uuid.UUID `json:"product_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Notes         *string   `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AdoptionRequestWithPetResponse struct {
	AdoptionRequestResponse
	PetName  string  `json:"pet_name"`
	PetImage *string `json:"pet_image,omitempty"`
}
