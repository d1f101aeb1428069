package middleware

import (
	"errors"
	"strings"

	"career-orient/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type claimsKey struct{}

type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Middleware rejects the request with 401 when no bearer token is sent and
// with 403 when the token fails verification.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.tokens.ValidateToken(raw)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusForbidden, "Token expired", nil, err)
		case err != nil:
			return NewAppError(fiber.StatusForbidden, "Invalid token", nil, err)
		}

		fiber.Locals(c, claimsKey{}, claims)
		return c.Next()
	}
}

// Claims returns the verified token claims, if the request went through
// Middleware.
func Claims(c fiber.Ctx) (jwt.Claims, bool) {
	claims, ok := c.Locals(claimsKey{}).(jwt.Claims)
	return claims, ok
}

func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := Claims(c)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is case-insensitive.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
