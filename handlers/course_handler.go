package handlers

import (
	"errors"
	"strconv"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateCourseRequest struct {
	Title        string  `json:"title" validate:"required,min=3"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Currency     string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	StudentRange int     `json:"student_range" validate:"required,min=1"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}

func CreateCourse(c *fiber.Ctx) error {
	teacherID := currentUserID(c)

	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", teacherID).Error; err != nil {
		return respond(c, fiber.StatusForbidden, "You must have an approved teacher profile to create courses", nil)
	}
	if teacher.Status != "approved" {
		return respond(c, fiber.StatusForbidden, "Your teacher profile has not been approved yet", nil)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	course := models.Course{
		TeacherID:    teacherID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     currency,
		StudentRange: req.StudentRange,
		ThumbnailURL: req.ThumbnailURL,
		Status:       models.CourseStatusDraft,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to create course", nil)
	}

	return respond(c, fiber.StatusCreated, "Course created", course)
}

type UpdateCourseRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=3"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	StudentRange *int     `json:"student_range,omitempty" validate:"omitempty,min=1"`
	ThumbnailURL *string  `json:"thumbnail_url,omitempty"`
}

func UpdateCourse(c *fiber.Ctx) error {
	teacherID := currentUserID(c)
	courseID := c.Params("courseId")

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Course not found", nil)
	}
	if course.TeacherID != teacherID {
		return respond(c, fiber.StatusForbidden, "This is not your course", nil)
	}
	if course.Status == models.CourseStatusCompleted || course.Status == models.CourseStatusDeleted {
		return respond(c, fiber.StatusBadRequest, "A "+course.Status+" course can no longer be edited", nil)
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.StudentRange != nil {
		if *req.StudentRange < course.EnrolledCount {
			return respond(c, fiber.StatusBadRequest, "Seat capacity cannot drop below the current enrollment count", nil)
		}
		course.StudentRange = *req.StudentRange
	}
	if req.ThumbnailURL != nil {
		course.ThumbnailURL = req.ThumbnailURL
	}

	if err := database.DB.Save(&course).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to update course", nil)
	}

	return respond(c, fiber.StatusOK, "Course updated", course)
}

// PublishCourse moves a draft course to active, opening it for enrollment.
func PublishCourse(c *fiber.Ctx) error {
	teacherID := currentUserID(c)
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Course not found", nil)
	}
	if course.TeacherID != teacherID {
		return respond(c, fiber.StatusForbidden, "This is not your course", nil)
	}
	if course.Status != models.CourseStatusDraft {
		return respond(c, fiber.StatusBadRequest, "Only draft courses can be published", nil)
	}

	course.Status = models.CourseStatusActive
	if err := database.DB.Save(&course).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to publish course", nil)
	}

	return respond(c, fiber.StatusOK, "Course published", course)
}

func GetCourses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var courses []models.Course
	query := database.DB.
		Preload("Teacher").
		Where("status = ?", models.CourseStatusActive).
		Order("created_at desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize)
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		query = query.Where("teacher_id = ?", teacherID)
	}
	if err := query.Find(&courses).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to fetch courses", nil)
	}

	return respond(c, fiber.StatusOK, "OK", courses)
}

func GetCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	if _, err := uuid.Parse(courseID); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid course ID format", nil)
	}

	var course models.Course
	err := database.DB.
		Preload("Teacher").
		Preload("Lectures", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		First(&course, "id = ?", courseID).Error
	if err != nil || course.Status == models.CourseStatusDeleted {
		return respond(c, fiber.StatusNotFound, "Course not found", nil)
	}

	return respond(c, fiber.StatusOK, "OK", course)
}

func GetMyCourses(c *fiber.Ctx) error {
	teacherID := currentUserID(c)

	var courses []models.Course
	database.DB.
		Where("teacher_id = ? AND status <> ?", teacherID, models.CourseStatusDeleted).
		Order("created_at desc").
		Find(&courses)

	return respond(c, fiber.StatusOK, "OK", courses)
}

// DeleteCourse soft-deletes: the record survives for audit but drops out of
// every listing. Admin only.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, fiber.StatusNotFound, "Course not found", nil)
		}
		return respond(c, fiber.StatusInternalServerError, "Database error", nil)
	}
	if course.Status == models.CourseStatusDeleted {
		return respond(c, fiber.StatusBadRequest, "Course is already deleted", nil)
	}

	course.Status = models.CourseStatusDeleted
	if err := database.DB.Save(&course).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to delete course", nil)
	}

	return respond(c, fiber.StatusOK, "Course deleted", nil)
}
