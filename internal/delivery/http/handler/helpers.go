package handler

import (
	"errors"
	"strconv"
	"strings"

	"career-orient/internal/delivery/http/middleware"
	"career-orient/internal/pkg/response"
	"career-orient/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func currentUser(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, key+" must be an integer", nil, err)
	}
	return v, nil
}

func parseIDParam(c fiber.Ctx, key string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(c.Params(key)), 10, 64)
	if err != nil || v <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, key+" must be a positive integer", nil, err)
	}
	return v, nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, field+" must be a valid id", nil, err)
	}
	return id, nil
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return nil
}

// mapCommonError translates the use case sentinels shared by every endpoint.
func mapCommonError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
