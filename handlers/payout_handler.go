package handlers

import (
	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/edumart/course_market/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CompleteCourse finalizes a course and pays the teacher for all unpaid
// enrollments in one transfer. Owner or admin only.
func CompleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid course ID format", nil)
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Course not found", nil)
	}
	if course.TeacherID != currentUserID(c) && currentUserRole(c) != "admin" {
		return respond(c, fiber.StatusForbidden, "This is not your course", nil)
	}

	completion, err := services.CompleteCourse(courseID)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Course completed and payout transferred", completion)
}

// PayoutEnrollment pays the teacher for a single enrollment. Admin only; used
// for out-of-band settlements without completing the whole course.
func PayoutEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("enrollmentId"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid enrollment ID format", nil)
	}

	enrollment, err := services.PayoutEnrollment(enrollmentID)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Enrollment paid out", enrollment)
}
