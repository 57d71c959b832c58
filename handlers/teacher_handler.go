package handlers

import (
	"errors"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/edumart/course_market/notifications"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TeacherApplicationRequest struct {
	Headline string `json:"headline" validate:"required"`
	Bio      string `json:"bio" validate:"required"`
}

func ApplyToBeATeacher(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req TeacherApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	var existing models.Teacher
	err := database.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return respond(c, fiber.StatusConflict, "You have already submitted an application", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respond(c, fiber.StatusInternalServerError, "Database error", nil)
	}

	application := models.Teacher{
		UserID:   userID,
		Headline: &req.Headline,
		Bio:      &req.Bio,
	}
	if err := database.DB.Create(&application).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to create application", nil)
	}

	notifications.DispatchRole("admin", "teacher.application",
		"A new teacher application is waiting for review",
		map[string]interface{}{"user_id": userID.String()})

	return respond(c, fiber.StatusCreated, "Application submitted", application)
}

type PayoutAccountRequest struct {
	PayoutAccountID string `json:"payout_account_id" validate:"required"`
}

// SetPayoutAccount stores the teacher's connected gateway account, the
// destination for every payout transfer.
func SetPayoutAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req PayoutAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	result := database.DB.Model(&models.Teacher{}).Where("user_id = ?", userID).
		Update("payout_account_id", req.PayoutAccountID)
	if result.Error != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to update payout account", nil)
	}
	if result.RowsAffected == 0 {
		return respond(c, fiber.StatusNotFound, "Teacher profile not found", nil)
	}

	return respond(c, fiber.StatusOK, "Payout account updated", nil)
}

func GetMyEarnings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", userID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Teacher profile not found", nil)
	}

	return respond(c, fiber.StatusOK, "OK", fiber.Map{
		"earnings":         teacher.Earnings,
		"pending_earnings": teacher.PendingEarnings,
	})
}

func GetTeacherProfile(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")

	var teacher models.Teacher
	if err := database.DB.Preload("User").First(&teacher, "user_id = ? AND status = ?", teacherID, "approved").Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Teacher not found", nil)
	}

	return respond(c, fiber.StatusOK, "OK", teacher)
}
