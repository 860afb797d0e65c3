package websocket

import (
	"path/filepath"
	"testing"
	"time"

	"pawhaven-be/internal/model"
	"pawhaven-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(nil, logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "hub.log")))
	go h.Run()
	return h
}

func registerClient(t *testing.T, h *Hub, userID uuid.UUID, buffer int) *Client {
	t.Helper()
	client := &Client{Hub: h, UserID: userID, Send: make(chan []byte, buffer)}
	h.register <- client

	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return len(h.clients[userID]) > 0
	}, time.Second, 5*time.Millisecond)
	return client
}

func TestSendDropsStalledClient(t *testing.T) {
	h := newTestHub(t)
	userID := uuid.New()
	client := registerClient(t, h, userID, 1)

	// Fill the buffer so the next delivery hits the full-buffer branch.
	client.Send <- []byte("backlog")

	h.Send(userID, model.Notification{Title: "First"})

	// Run unregisters the stalled client and closes its channel.
	assert.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		_, ok := h.clients[userID]
		return !ok
	}, time.Second, 5*time.Millisecond)

	<-client.Send
	_, open := <-client.Send
	assert.False(t, open, "hub closes the channel exactly once")

	// Sending again to the departed user must not panic.
	h.Send(userID, model.Notification{Title: "Second"})
}

func TestBroadcastSkipsStalledClientAndDeliversToOthers(t *testing.T) {
	h := newTestHub(t)

	stalledID := uuid.New()
	healthyID := uuid.New()
	stalled := registerClient(t, h, stalledID, 1)
	healthy := registerClient(t, h, healthyID, 4)

	stalled.Send <- []byte("backlog")

	h.Broadcast(model.Notification{Title: "Announcement"})

	select {
	case msg := <-healthy.Send:
		assert.Contains(t, string(msg), "Announcement")
	case <-time.After(time.Second):
		t.Fatal("healthy client did not receive the broadcast")
	}

	assert.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		_, ok := h.clients[stalledID]
		return !ok
	}, time.Second, 5*time.Millisecond)

	h.mu.RLock()
	_, healthyStill := h.clients[healthyID]
	h.mu.RUnlock()
	assert.True(t, healthyStill)
}
