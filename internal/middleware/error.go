package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vitalyze/vitalyze/internal/logging"
	"github.com/vitalyze/vitalyze/internal/models"
	"github.com/vitalyze/vitalyze/internal/services"
)

// ErrorHandler returns a custom error handler middleware. Service errors
// keep their code and HTTP status; everything else collapses to a generic
// error payload.
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "ERROR"
		message := "Internal Server Error"
		var details map[string]interface{}

		var svcErr *services.ServiceError
		if errors.As(err, &svcErr) {
			code = svcErr.HTTPStatus()
			errCode = svcErr.Code
			message = svcErr.Message
			details = svcErr.Details
		} else if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error("Request error",
			"path", c.Path(),
			"method", c.Method(),
			"status", code,
			"request_id", logging.RequestIDFromContext(c.UserContext()),
			"error", err,
		)

		return c.Status(code).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    errCode,
				Message: message,
				Details: details,
			},
		})
	}
}
