package handlers

import (
	"github.com/edumart/course_market/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreatePaymentIntent returns a gateway client secret for the course price so
// the frontend can collect payment details. No state is written here.
func CreatePaymentIntent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid course ID format", nil)
	}

	result, err := services.CreatePaymentIntent(courseID)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusCreated, "Payment intent created", fiber.Map{
		"intent_id":     result.IntentID,
		"client_secret": result.ClientSecret,
	})
}
