package ws

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"career-orient/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades authenticated requests on /ws and attaches them to the
// hub under the token's user id.
type Handler struct {
	hub      *Hub
	tokens   jwt.Service
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

type HandlerOption func(*Handler)

// WithAllowedOrigins restricts the handshake Origin header. Without it every
// origin is accepted.
func WithAllowedOrigins(origins ...string) HandlerOption {
	return func(h *Handler) {
		if len(origins) == 0 {
			return
		}
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			return slices.Contains(origins, r.Header.Get("Origin"))
		}
	}
}

func NewHandler(hub *Hub, tokens jwt.Service, logger *slog.Logger, opts ...HandlerOption) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		hub:    hub,
		tokens: tokens,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws", h.HandleEvents)
}

// HandleEvents reads the token from the "token" query parameter, since
// browsers cannot set headers on the handshake, and falls back to a bearer
// Authorization header for other clients.
func (h *Handler) HandleEvents(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.tokens == nil {
		return fiber.ErrServiceUnavailable
	}

	userID, err := h.authenticate(c)
	if err != nil {
		return err
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade failed", "user_id", userID, "error", err)
			return
		}

		client := NewClient(h.hub, userID, conn)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})(c)
}

func (h *Handler) authenticate(c fiber.Ctx) (uuid.UUID, error) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		scheme, rest, ok := strings.Cut(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)), " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}
	}
	if token == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Invalid token")
	}
	return claims.UserID, nil
}
