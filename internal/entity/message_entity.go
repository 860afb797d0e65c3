package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id                uuid.UUID
	SenderId          uuid.UUID
	ReceiverId        uuid.UUID
	Content           string
	AdoptionRequestId *uuid.UUID
	IsRead            bool
	CreatedAt         time.Time
}

// MessageWithNames joins the participant display names for inbox views.
type MessageWithNames struct {
	Message
	SenderName   string
	ReceiverName string
}
