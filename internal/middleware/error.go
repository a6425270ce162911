package middleware

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"facilitrack/internal/domain"
)

type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message, StatusCode: status})
}

// NewErrorHandler renders every error as the common envelope. Raw database
// errors never reach the client; outside development the message for
// unknown errors is redacted.
func NewErrorHandler(isDevelopment bool, logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return respond(c, appErr.Status, appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return respond(c, fiberErr.Code, fiberErr.Message)
		}

		if errors.Is(err, sql.ErrNoRows) {
			return respond(c, fiber.StatusNotFound, "resource not found")
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return respond(c, fiber.StatusConflict, "resource already exists")
			case "23503":
				return respond(c, fiber.StatusBadRequest, "referenced resource does not exist")
			}
		}

		logger.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled error")

		message := "internal server error"
		if isDevelopment {
			message = err.Error()
		}
		return respond(c, fiber.StatusInternalServerError, message)
	}
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}
