package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ReceiverId        uuid.UUID  `json:"receiver_id" validate:"required"`
	Content           string     `json:"content" validate:"required,min=1"`
	AdoptionRequestId *uuid.UUID `json:"adoption_request_id"`
}

type MessageResponse struct {
	Id                uuid.UUID  `json:"id"`
	SenderId          uuid.UUID  `json:"sender_id"`
	ReceiverId        uuid.UUID  `json:"receiver_id"`
	Content           string     `json:"content"`
	AdoptionRequestId *uuid.UUID `json:"adoption_request_id,omitempty"`
	IsRead            bool       `json:"is_read"`
	CreatedAt         time.Time  `json:"created_at"`
}

type MessageWithNamesResponse struct {
	MessageResponse
	SenderName   string `json:"sender_name"`
	ReceiverName string `json:"receiver_name"`
}
