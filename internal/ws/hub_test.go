package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"career-orient/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(h *Hub, userID uuid.UUID, buf int) *Client {
	return &Client{hub: h, userID: userID, send: make(chan []byte, buf)}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(logger.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func TestHub_PublishReachesOnlyTargetUser(t *testing.T) {
	h := startHub(t)
	alice, bob := uuid.New(), uuid.New()

	ca := testClient(h, alice, 4)
	cb := testClient(h, bob, 4)
	h.Register(ca)
	h.Register(cb)
	require.Eventually(t, func() bool {
		return h.ClientCount(alice) == 1 && h.ClientCount(bob) == 1
	}, time.Second, 5*time.Millisecond)

	h.Publish(alice, "favorite_added", map[string]int64{"jobId": 7})

	select {
	case msg := <-ca.send:
		var evt struct {
			Type    string           `json:"type"`
			UserID  uuid.UUID        `json:"userId"`
			Payload map[string]int64 `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, "favorite_added", evt.Type)
		assert.Equal(t, alice, evt.UserID)
		assert.Equal(t, int64(7), evt.Payload["jobId"])
	case <-time.After(time.Second):
		t.Fatal("expected event for alice")
	}

	select {
	case <-cb.send:
		t.Fatal("bob must not receive alice's event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	h := startHub(t)
	userID := uuid.New()

	slow := testClient(h, userID, 0)
	h.Register(slow)
	require.Eventually(t, func() bool { return h.ClientCount(userID) == 1 }, time.Second, 5*time.Millisecond)

	h.Publish(userID, "application_created", nil)
	require.Eventually(t, func() bool { return h.ClientCount(userID) == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-slow.send
	assert.False(t, open)
}

func TestHub_UnregisterAndNilSafety(t *testing.T) {
	h := startHub(t)
	userID := uuid.New()

	c := testClient(h, userID, 1)
	h.Register(c)
	require.Eventually(t, func() bool { return h.ClientCount(userID) == 1 }, time.Second, 5*time.Millisecond)
	h.Unregister(c)
	require.Eventually(t, func() bool { return h.ClientCount(userID) == 0 }, time.Second, 5*time.Millisecond)

	var nilHub *Hub
	nilHub.Publish(userID, "x", nil)
	nilHub.Register(c)
	assert.Equal(t, 0, nilHub.ClientCount(userID))
}
