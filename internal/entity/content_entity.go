package entity

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	Id           uuid.UUID
	Name         string
	Role         string
	Bio          *string
	ImageURL     *string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
}

type HistoryEvent struct {
	Id           uuid.UUID
	Year         int
	Title        string
	Description  *string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
}

type Category struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	Description  *string
	ImageURL     *string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
}

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type ContactSubmission struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Subject   *string
	Message   string
	CreatedAt time.Time
}
