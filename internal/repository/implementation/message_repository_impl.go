package implementation

import (
	"context"

	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/mapper"
	"pawhaven-be/internal/model"
	"pawhaven-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessageMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessageMapper(),
	}
}

type messageRow struct {
	model.Message
	SenderName   string `gorm:"column:sender_name"`
	ReceiverName string `gorm:"column:receiver_name"`
}

func (r *MessageRepositoryImpl) toWithNames(rows []messageRow) []*entity.MessageWithNames {
	result := make([]*entity.MessageWithNames, len(rows))
	for i, row := range rows {
		result[i] = &entity.MessageWithNames{
			Message:      *r.mapper.ToEntity(&row.Message),
			SenderName:   row.SenderName,
			ReceiverName: row.ReceiverName,
		}
	}
	return result
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *MessageRepositoryImpl) FindLatestForUser(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.MessageWithNames, error) {
	var rows []messageRow

	err := r.db.WithContext(ctx).Table("messages").
		Select("messages.*, senders.full_name as sender_name, receivers.full_name as receiver_name").
		Joins("JOIN users senders ON senders.id = messages.sender_id").
		Joins("JOIN users receivers ON receivers.id = messages.receiver_id").
		Where("messages.sender_id = ? OR messages.receiver_id = ?", userId, userId).
		Order("messages.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return r.toWithNames(rows), nil
}

func (r *MessageRepositoryImpl) FindConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.MessageWithNames, error) {
	var rows []messageRow

	err := r.db.WithContext(ctx).Table("messages").
		Select("messages.*, senders.full_name as sender_name, receivers.full_name as receiver_name").
		Joins("JOIN users senders ON senders.id = messages.sender_id").
		Joins("JOIN users receivers ON receivers.id = messages.receiver_id").
		Where("(messages.sender_id = ? AND messages.receiver_id = ?) OR (messages.sender_id = ? AND messages.receiver_id = ?)",
			userA, userB, userB, userA).
		Order("messages.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return r.toWithNames(rows), nil
}

func (r *MessageRepositoryImpl) MarkRead(ctx context.Context, id, receiverId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ? AND receiver_id = ?", id, receiverId).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
