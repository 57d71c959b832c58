package handlers

import (
	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/edumart/course_market/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EnrollRequest struct {
	CourseID      string `json:"course_id" validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// Enroll charges the student and records the enrollment. Capacity, duplicate
// and payment failures come back as distinct error reasons.
func Enroll(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	courseID, _ := uuid.Parse(req.CourseID)

	enrollment, err := services.Enroll(studentID, courseID, req.PaymentMethod)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusCreated, "Enrollment successful", enrollment)
}

func GetMyEnrollments(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var enrollments []models.Enrollment
	database.DB.
		Preload("Course.Teacher").
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&enrollments)

	return respond(c, fiber.StatusOK, "OK", enrollments)
}

func GetCourseEnrollments(c *fiber.Ctx) error {
	teacherID := currentUserID(c)
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Course not found", nil)
	}
	if course.TeacherID != teacherID && currentUserRole(c) != "admin" {
		return respond(c, fiber.StatusForbidden, "This is not your course", nil)
	}

	var enrollments []models.Enrollment
	database.DB.
		Preload("Student").
		Where("course_id = ?", courseID).
		Order("created_at asc").
		Find(&enrollments)

	return respond(c, fiber.StatusOK, "OK", enrollments)
}
