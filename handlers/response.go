package handlers

import (
	"errors"

	"github.com/edumart/course_market/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success":    status < 400,
		"statusCode": status,
		"message":    message,
		"data":       data,
	})
}

// respondError maps workflow errors to HTTP statuses. Anything unrecognized
// is a 500 with a generic message so internals never leak.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrTeacherNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrEnrollmentNotFound):
		return respond(c, fiber.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrDuplicateEnrollment),
		errors.Is(err, services.ErrCapacityExceeded):
		return respond(c, fiber.StatusConflict, err.Error(), nil)
	case errors.Is(err, services.ErrPaymentFailed):
		return respond(c, fiber.StatusPaymentRequired, err.Error(), nil)
	case errors.Is(err, services.ErrPayoutFailed),
		errors.Is(err, services.ErrInvalidState):
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	return respond(c, fiber.StatusInternalServerError, "Internal server error", nil)
}
