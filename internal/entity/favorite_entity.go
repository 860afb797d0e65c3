package entity

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ProductId uuid.UUID
	CreatedAt time.Time
}

type FavoriteWithPet struct {
	Favorite
	PetName   string
	PetBreed  *string
	PetImage  *string
	PetPrice  float64
	PetStatus ProductStatus
}
