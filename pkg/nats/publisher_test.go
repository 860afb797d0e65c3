package nats

import (
	"encoding/json"
	"testing"
	"time"

	"pawhaven-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEventDoesNotMutateEventData(t *testing.T) {
	event := events.BaseEvent{
		Type: "USER_LOGIN",
		Data: map[string]interface{}{
			"user_id":   "abc-123",
			"full_name": "Jane Doe",
		},
		OccurredAt: time.Now(),
	}

	data, err := encodeEvent(event)
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, "USER_LOGIN", wire["event_type"])
	assert.Equal(t, "abc-123", wire["user_id"])

	// The caller's map stays untouched.
	assert.NotContains(t, event.Data, "event_type")
	assert.Len(t, event.Data, 2)
}
