package handlers

import (
	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/gofiber/fiber/v2"
)

type CreateLectureRequest struct {
	Title    string  `json:"title" validate:"required,min=3"`
	VideoURL *string `json:"video_url,omitempty" validate:"omitempty,url"`
	Position int     `json:"position,omitempty"`
}

func CreateLecture(c *fiber.Ctx) error {
	teacherID := currentUserID(c)
	courseID := c.Params("courseId")

	var req CreateLectureRequest
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
		return respond(c, fiber.StatusBadRequest, "Lectures cannot be added to a "+course.Status+" course", nil)
	}

	lecture := models.Lecture{
		CourseID: course.ID,
		Title:    req.Title,
		VideoURL: req.VideoURL,
		Position: req.Position,
		Status:   models.LectureStatusIncomplete,
	}
	if err := database.DB.Create(&lecture).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to create lecture", nil)
	}

	return respond(c, fiber.StatusCreated, "Lecture created", lecture)
}

type UpdateLectureRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=3"`
	VideoURL *string `json:"video_url,omitempty" validate:"omitempty,url"`
	Position *int    `json:"position,omitempty"`
}

func UpdateLecture(c *fiber.Ctx) error {
	teacherID := currentUserID(c)
	lectureID := c.Params("lectureId")

	var req UpdateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	var lecture models.Lecture
	if err := database.DB.Preload("Course").First(&lecture, "id = ?", lectureID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Lecture not found", nil)
	}
	if lecture.Course.TeacherID != teacherID {
		return respond(c, fiber.StatusForbidden, "This is not your course", nil)
	}

	if req.Title != nil {
		lecture.Title = *req.Title
	}
	if req.VideoURL != nil {
		lecture.VideoURL = req.VideoURL
	}
	if req.Position != nil {
		lecture.Position = *req.Position
	}

	if err := database.DB.Save(&lecture).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to update lecture", nil)
	}

	return respond(c, fiber.StatusOK, "Lecture updated", lecture)
}

func DeleteLecture(c *fiber.Ctx) error {
	teacherID := currentUserID(c)
	lectureID := c.Params("lectureId")

	var lecture models.Lecture
	if err := database.DB.Preload("Course").First(&lecture, "id = ?", lectureID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Lecture not found", nil)
	}
	if lecture.Course.TeacherID != teacherID {
		return respond(c, fiber.StatusForbidden, "This is not your course", nil)
	}
	if lecture.Course.Status == models.CourseStatusCompleted {
		return respond(c, fiber.StatusBadRequest, "Lectures of a completed course cannot be deleted", nil)
	}

	if err := database.DB.Delete(&models.Lecture{}, "id = ?", lectureID).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to delete lecture", nil)
	}

	return respond(c, fiber.StatusOK, "Lecture deleted", nil)
}

func GetCourseLectures(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var lectures []models.Lecture
	database.DB.Where("course_id = ?", courseID).Order("position asc").Find(&lectures)

	return respond(c, fiber.StatusOK, "OK", lectures)
}
