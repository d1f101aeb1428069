// Package response renders the JSON envelope shared by every endpoint:
// {"status": <http status>, "message": <text>, "data": <payload or null>}.
package response

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
)

type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageInternalServerError = "internal server error"
)

// OK renders a 200 with the default message.
func OK(c fiber.Ctx, data interface{}) error {
	return Success(c, fiber.StatusOK, MessageOK, data)
}

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = DefaultMessage(status)
	}
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data})
}

// DefaultMessage is the lower-cased reason phrase for status, e.g.
// "bad request" for 400.
func DefaultMessage(status int) string {
	if status == fiber.StatusOK {
		return MessageOK
	}
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	if status >= 500 {
		return MessageInternalServerError
	}
	return "error"
}
