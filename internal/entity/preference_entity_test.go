package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPreferences(t *testing.T) {
	userId := uuid.New()
	prefs := DefaultPreferences(userId)

	assert.Equal(t, userId, prefs.UserId)
	assert.NotEqual(t, uuid.Nil, prefs.Id)

	assert.True(t, prefs.Email)
	assert.True(t, prefs.Push)
	assert.False(t, prefs.Sms)
	assert.False(t, prefs.Marketing)
	assert.True(t, prefs.AdoptionUpdates)
	assert.True(t, prefs.MessageAlerts)
}
