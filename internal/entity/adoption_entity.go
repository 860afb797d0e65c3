package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdoptionStatus string

const (
	AdoptionStatusPending  AdoptionStatus = "pending"
	AdoptionStatusApproved AdoptionStatus = "approved"
	AdoptionStatusRejected AdoptionStatus = "rejected"
)

type AdoptionRequest struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	ProductId     uuid.UUID
	CustomerName  string
	CustomerEmail string
	Notes         *string
	Status        AdoptionStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AdoptionRequestWithPet is the read shape for user-facing listings.
type AdoptionRequestWithPet struct {
	AdoptionRequest
	PetName  string
	PetImage *string
}
