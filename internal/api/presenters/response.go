package presenters

import (
	"errors"
	"recipe-service/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes err under "error". Validation errors keep their
// per-field reasons.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	var detail interface{}
	var validation *domain.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &validation):
		detail = validation.Fields
	default:
		detail = err.Error()
	}
	return c.Status(statusCode).JSON(Response{
		Status:  false,
		Message: message,
		Error:   detail,
	})
}

// StatusFor maps a service error onto the HTTP status returned to clients.
func StatusFor(err error) int {
	var (
		notFound   *domain.NotFoundError
		validation *domain.ValidationError
		search     *domain.SearchError
	)
	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &validation):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &search):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
