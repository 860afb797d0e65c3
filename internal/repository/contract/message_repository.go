package contract

import (
	"context"

	"pawhaven-be/internal/entity"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// FindLatestForUser returns messages where the user is sender or
	// receiver, newest first, with participant names joined.
	FindLatestForUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.MessageWithNames, error)

	// FindConversation returns both directions between two users, oldest
	// first.
	FindConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.MessageWithNames, error)

	// MarkRead flips is_read for a message the user received. Returns
	// the affected row count.
	MarkRead(ctx context.Context, id, receiverId uuid.UUID) (int64, error)
}
