package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product,priority:1"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product,priority:2"`
	Rating    int       `gorm:"not null"`
	Comment   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
