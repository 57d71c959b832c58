package handlers

import (
	"strconv"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/edumart/course_market/notifications"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	var users []models.User
	query := database.DB.Order("created_at desc").Limit(pageSize).Offset((page - 1) * pageSize)
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)

	return respond(c, fiber.StatusOK, "OK", users)
}

func GetPendingTeachers(c *fiber.Ctx) error {
	var applications []models.Teacher
	database.DB.Preload("User").Where("status = ?", "pending").Find(&applications)

	return respond(c, fiber.StatusOK, "OK", applications)
}

// ApproveTeacher flips the application to approved and promotes the user's
// role so the teacher route gates open up.
func ApproveTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid teacher ID format", nil)
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", teacherID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Teacher application not found", nil)
	}
	if teacher.Status == "approved" {
		return respond(c, fiber.StatusBadRequest, "This application is already approved", nil)
	}

	teacher.Status = "approved"
	if err := database.DB.Save(&teacher).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to approve teacher", nil)
	}
	if err := database.DB.Model(&models.User{}).Where("id = ?", teacherID).
		Update("role", "teacher").Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to update user role", nil)
	}

	notifications.Dispatch(teacherID, "teacher.approved",
		"Your teacher application has been approved — you can now create courses", nil)

	return respond(c, fiber.StatusOK, "Teacher approved", teacher)
}

func DeactivateUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	result := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_active", false)
	if result.Error != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to deactivate user", nil)
	}
	if result.RowsAffected == 0 {
		return respond(c, fiber.StatusNotFound, "User not found", nil)
	}

	return respond(c, fiber.StatusOK, "User deactivated", nil)
}

// GetStuckIntents lists charged-but-unfulfilled enrollment intents so an
// operator can decide between retry and refund.
func GetStuckIntents(c *fiber.Ctx) error {
	var stuck []models.EnrollmentIntent
	database.DB.
		Where("status = ?", models.IntentStatusCharged).
		Order("created_at asc").
		Find(&stuck)

	return respond(c, fiber.StatusOK, "OK", stuck)
}
