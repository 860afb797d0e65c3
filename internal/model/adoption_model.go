package model

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionRequest rows also carry a partial unique index on
// (user_id, product_id) WHERE status IN ('pending','approved'),
// created by cmd/migrate since gorm tags cannot express it.
type AdoptionRequest struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName  string    `gorm:"type:varchar(255);not null"`
	CustomerEmail string    `gorm:"type:varchar(255);not null"`
	Notes         *string   `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (AdoptionRequest) TableName() string {
	return "adoption_requests"
}
