package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ProductId uuid.UUID
	Rating    int
	Comment   *string
	CreatedAt time.Time
}

type ReviewWithPet struct {
	Review
	PetName  string
	PetImage *string
}
