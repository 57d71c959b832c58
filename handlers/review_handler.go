package handlers

import (
	"errors"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview accepts one review per (student, course); only enrolled
// students may review, and the teacher's average rating is refreshed in the
// same transaction.
func CreateReview(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	courseID := c.Params("courseId")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	var newReview models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
			return errors.New("course not found")
		}

		var enrollment models.Enrollment
		if err := tx.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error; err != nil {
			return errors.New("you are not enrolled in this course")
		}

		var existing models.Review
		if err := tx.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error; err == nil {
			return errors.New("you have already reviewed this course")
		}

		newReview = models.Review{
			CourseID:  course.ID,
			StudentID: studentID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := tx.Create(&newReview).Error; err != nil {
			return err
		}

		var result struct {
			Avg float64
		}
		tx.Model(&models.Review{}).
			Joins("JOIN courses ON courses.id = reviews.course_id").
			Where("courses.teacher_id = ?", course.TeacherID).
			Select("avg(rating) as avg").Scan(&result)

		return tx.Model(&models.Teacher{}).Where("user_id = ?", course.TeacherID).
			Update("avg_rating", result.Avg).Error
	})
	if err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	return respond(c, fiber.StatusCreated, "Review submitted", newReview)
}

func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var reviews []models.Review
	database.DB.
		Preload("Student").
		Where("course_id = ?", courseID).
		Order("created_at desc").
		Find(&reviews)

	return respond(c, fiber.StatusOK, "OK", reviews)
}
