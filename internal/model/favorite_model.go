package model

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product,priority:1"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
