package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event codes known to the notification worker. Each code must have a
// matching row in notification_types for recipients to be resolved.
const (
	TypeUserLogin        = "USER_LOGIN"
	TypeContactSubmitted = "CONTACT_SUBMITTED"
)

// NewUserLoginEvent is emitted after a successful credential or OAuth login.
func NewUserLoginEvent(userID, email, fullName string) Event {
	return BaseEvent{
		Type: TypeUserLogin,
		Data: map[string]interface{}{
			"user_id":   userID,
			"email":     email,
			"full_name": fullName,
		},
		OccurredAt: time.Now(),
	}
}

// NewContactSubmittedEvent is emitted when a visitor submits the contact form.
func NewContactSubmittedEvent(submissionID, name, email, subject string) Event {
	return BaseEvent{
		Type: TypeContactSubmitted,
		Data: map[string]interface{}{
			"submission_id": submissionID,
			"name":          name,
			"email":         email,
			"subject":       subject,
		},
		OccurredAt: time.Now(),
	}
}
