package middleware

import (
	"errors"
	"log/slog"

	"career-orient/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError carries the status and client-facing message a handler chose.
// Cause is logged, never rendered.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

func (e *AppError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Cause == nil:
		return e.Message
	default:
		return e.Message + ": " + e.Cause.Error()
	}
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// rendered is what reaches the client for a failed request.
type rendered struct {
	status  int
	message string
	data    interface{}
}

var internalError = rendered{
	status:  fiber.StatusInternalServerError,
	message: response.MessageInternalServerError,
}

// render maps err onto the envelope. Anything at or above 500, and anything
// that is neither an AppError nor a fiber.Error, collapses to a bare 500.
func render(err error) rendered {
	var out rendered

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		out = rendered{status: appErr.StatusCode, message: appErr.Message, data: appErr.Data}
	case errors.As(err, &fiberErr):
		out = rendered{status: fiberErr.Code, message: fiberErr.Message}
	default:
		return internalError
	}

	if out.status < 400 || out.status >= 500 {
		return internalError
	}
	if out.message == "" {
		out.message = response.DefaultMessage(out.status)
	}
	return out
}

type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					"rid", c.GetRespHeader(HeaderRequestID),
					"method", c.Method(),
					"path", c.Path(),
					"panic", r,
				)
				err = write(c, internalError)
			}
		}()

		if err = c.Next(); err == nil {
			return nil
		}
		return m.Handler()(c, err)
	}
}

// Handler is the fiber.ErrorHandler counterpart of Middleware, for errors
// raised outside the middleware chain.
func (m *ErrorMiddleware) Handler() fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		out := render(err)

		level := slog.LevelDebug
		if out.status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		m.logger.Log(c.Context(), level, "request failed",
			"rid", c.GetRespHeader(HeaderRequestID),
			"method", c.Method(),
			"path", c.Path(),
			"status", out.status,
			"error", err,
		)

		return write(c, out)
	}
}

// ErrorHandler renders without logging; tests and bare apps use it directly.
func ErrorHandler(c fiber.Ctx, err error) error {
	return write(c, render(err))
}

func write(c fiber.Ctx, r rendered) error {
	return response.Error(c, r.status, r.message, r.data)
}
