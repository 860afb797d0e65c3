package dto

import (
	"github.com/google/uuid"
)

type ContactRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Email   string  `json:"email" validate:"required,email"`
	Subject *string `json:"subject" validate:"omitempty,max=255"`
	Message string  `json:"message" validate:"required,min=1"`
}

type ContactResponse struct {
	Id      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

type TeamMemberResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Bio      *string   `json:"bio,omitempty"`
	ImageURL *string   `json:"image_url,omitempty"`
}

type HistoryEventResponse struct {
	Id          uuid.UUID `json:"id"`
	Year        int       `json:"year"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
}

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

type NotificationCountResponse struct {
	Unread int64 `json:"unread"`
}
