package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is the JSON frame pushed to a user's connections.
type Event struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"userId"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

type delivery struct {
	userID  uuid.UUID
	message []byte
}

// Hub fans events out to the connections of a single user.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *slog.Logger
	now        func() time.Time
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		deliver:    make(chan delivery, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
		now:        time.Now,
	}
}

// Run processes registrations and deliveries until ctx is done, then closes
// every remaining connection's send queue.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for userID, set := range h.clients {
				for c := range set {
					close(c.send)
				}
				delete(h.clients, userID)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			total := len(set)
			h.mutex.Unlock()
			h.logger.Debug("ws connected", "user_id", client.userID, "user_clients", total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.removeLocked(client)
			h.mutex.Unlock()
			h.logger.Debug("ws disconnected", "user_id", client.userID)

		case d := <-h.deliver:
			h.mutex.Lock()
			set := h.clients[d.userID]
			sent := 0
			for client := range set {
				select {
				case client.send <- d.message:
					sent++
				default:
					h.removeLocked(client)
					h.logger.Warn("ws client dropped", "user_id", d.userID, "reason", "send_buffer_full")
				}
			}
			h.mutex.Unlock()
			h.logger.Debug("ws delivered", "user_id", d.userID, "clients", sent)
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Publish queues an event for userID without blocking; it is dropped when
// the queue is full or the user has no live connection.
func (h *Hub) Publish(userID uuid.UUID, eventType string, payload any) {
	if h == nil || userID == uuid.Nil {
		return
	}

	b, err := json.Marshal(Event{
		Type:      eventType,
		UserID:    userID,
		Payload:   payload,
		Timestamp: h.now().UTC(),
	})
	if err != nil {
		h.logger.Error("ws encode event", "type", eventType, "error", err)
		return
	}

	select {
	case h.deliver <- delivery{userID: userID, message: b}:
	default:
		h.logger.Warn("ws event dropped", "type", eventType, "reason", "buffer_full")
	}
}

func (h *Hub) ClientCount(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID])
}
