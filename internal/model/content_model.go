package model

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(255);not null"`
	Bio          *string   `gorm:"type:text"`
	ImageURL     *string   `gorm:"type:text"`
	DisplayOrder int       `gorm:"default:0"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

type HistoryEvent struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Year         int       `gorm:"not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  *string   `gorm:"type:text"`
	DisplayOrder int       `gorm:"default:0"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (HistoryEvent) TableName() string {
	return "history_events"
}

type Category struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Slug         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description  *string   `gorm:"type:text"`
	ImageURL     *string   `gorm:"type:text"`
	DisplayOrder int       `gorm:"default:0"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}

type Setting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Setting) TableName() string {
	return "settings"
}

type ContactSubmission struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Subject   *string   `gorm:"type:varchar(255)"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
