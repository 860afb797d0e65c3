package service

import (
	"testing"
	"time"

	"pawhaven-be/internal/model"
	"pawhaven-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildNotificationTemplateSubstitution(t *testing.T) {
	s := &NotificationService{}
	userID := uuid.New()

	config := &model.NotificationType{
		Code:        "CONTACT_SUBMITTED",
		DisplayName: "New Contact Submission",
		Template:    "{name} ({email}) sent a message: {subject}",
		TargetType:  "ADMIN",
		IsActive:    true,
	}

	event := events.BaseEvent{
		Type: "CONTACT_SUBMITTED",
		Data: map[string]interface{}{
			"name":    "Jane Doe",
			"email":   "jane@example.com",
			"subject": "Visiting hours",
		},
		OccurredAt: time.Now(),
	}

	notif := s.buildNotification(userID, config, event)

	assert.Equal(t, userID, notif.UserID)
	assert.Equal(t, "New Contact Submission", notif.Title)
	assert.Equal(t, "Jane Doe (jane@example.com) sent a message: Visiting hours", notif.Message)
	assert.Equal(t, "info", notif.Type)
	assert.NotNil(t, notif.TypeCode)
	assert.Equal(t, "CONTACT_SUBMITTED", *notif.TypeCode)
	assert.False(t, notif.IsRead)
}

func TestBuildNotificationLeavesUnknownPlaceholders(t *testing.T) {
	s := &NotificationService{}

	config := &model.NotificationType{
		Code:        "USER_LOGIN",
		DisplayName: "Login Activity",
		Template:    "Welcome back, {full_name}",
		TargetType:  "SELF",
		IsActive:    true,
	}

	event := events.BaseEvent{
		Type:       "USER_LOGIN",
		Data:       map[string]interface{}{"user_id": uuid.New().String()},
		OccurredAt: time.Now(),
	}

	notif := s.buildNotification(uuid.New(), config, event)

	// Missing payload keys are left in place rather than erased
	assert.Equal(t, "Welcome back, {full_name}", notif.Message)
}
