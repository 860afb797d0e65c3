package model

import (
	"time"

	"github.com/google/uuid"
)

type UserPreferences struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email           bool      `gorm:"default:true"`
	Push            bool      `gorm:"default:true"`
	Sms             bool      `gorm:"default:false"`
	Marketing       bool      `gorm:"default:false"`
	AdoptionUpdates bool      `gorm:"default:true"`
	MessageAlerts   bool      `gorm:"default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
