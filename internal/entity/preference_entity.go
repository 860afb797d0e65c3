package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserPreferences holds notification delivery flags. The flags are stored
// and editable but delivery does not consult them yet.
type UserPreferences struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Email           bool
	Push            bool
	Sms             bool
	Marketing       bool
	AdoptionUpdates bool
	MessageAlerts   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultPreferences is the row lazily created on first read.
func DefaultPreferences(userId uuid.UUID) *UserPreferences {
	return &UserPreferences{
		Id:              uuid.New(),
		UserId:          userId,
		Email:           true,
		Push:            true,
		Sms:             false,
		Marketing:       false,
		AdoptionUpdates: true,
		MessageAlerts:   true,
	}
}
