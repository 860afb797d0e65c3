package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Species           string    `gorm:"type:varchar(100);not null"`
	Breed             *string   `gorm:"type:varchar(100)"`
	Age               *int
	Gender            string  `gorm:"type:varchar(20);not null;default:'unknown'"`
	Price             float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Description       *string `gorm:"type:text"`
	ImageURL          *string `gorm:"type:text"`
	Location          *string `gorm:"type:varchar(255)"`
	MedicalHistory    *string `gorm:"type:text"`
	PersonalityTraits *string `gorm:"type:text"`
	Category          string  `gorm:"type:varchar(50);not null;index"`
	Status            string  `gorm:"type:varchar(20);not null;default:'available';index"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
