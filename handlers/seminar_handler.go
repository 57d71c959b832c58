package handlers

import (
	"time"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/gofiber/fiber/v2"
)

type CreateSeminarRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description"`
	StartTime   string  `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	MeetingLink *string `json:"meeting_link,omitempty" validate:"omitempty,url"`
	Capacity    int     `json:"capacity,omitempty" validate:"omitempty,min=0"`
}

func CreateSeminar(c *fiber.Ctx) error {
	teacherID := currentUserID(c)

	var req CreateSeminarRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	if startTime.Before(time.Now()) {
		return respond(c, fiber.StatusBadRequest, "Seminar start time cannot be in the past", nil)
	}

	seminar := models.Seminar{
		TeacherID:   teacherID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		MeetingLink: req.MeetingLink,
		Capacity:    req.Capacity,
	}
	if err := database.DB.Create(&seminar).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to create seminar", nil)
	}

	return respond(c, fiber.StatusCreated, "Seminar created", seminar)
}

func GetSeminars(c *fiber.Ctx) error {
	var seminars []models.Seminar
	database.DB.
		Preload("Teacher").
		Where("start_time > ?", time.Now()).
		Order("start_time asc").
		Find(&seminars)

	return respond(c, fiber.StatusOK, "OK", seminars)
}

func GetMySeminars(c *fiber.Ctx) error {
	teacherID := currentUserID(c)

	var seminars []models.Seminar
	database.DB.Where("teacher_id = ?", teacherID).Order("start_time desc").Find(&seminars)

	return respond(c, fiber.StatusOK, "OK", seminars)
}

type UpdateSeminarRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3"`
	Description *string `json:"description,omitempty"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	MeetingLink *string `json:"meeting_link,omitempty" validate:"omitempty,url"`
}

func UpdateSeminar(c *fiber.Ctx) error {
	teacherID := currentUserID(c)
	seminarID := c.Params("seminarId")

	var req UpdateSeminarRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	var seminar models.Seminar
	if err := database.DB.First(&seminar, "id = ?", seminarID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Seminar not found", nil)
	}
	if seminar.TeacherID != teacherID {
		return respond(c, fiber.StatusForbidden, "This is not your seminar", nil)
	}

	if req.Title != nil {
		seminar.Title = *req.Title
	}
	if req.Description != nil {
		seminar.Description = *req.Description
	}
	if req.StartTime != nil {
		startTime, _ := time.Parse(time.RFC3339, *req.StartTime)
		seminar.StartTime = startTime
	}
	if req.MeetingLink != nil {
		seminar.MeetingLink = req.MeetingLink
	}

	if err := database.DB.Save(&seminar).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to update seminar", nil)
	}

	return respond(c, fiber.StatusOK, "Seminar updated", seminar)
}

func DeleteSeminar(c *fiber.Ctx) error {
	teacherID := currentUserID(c)
	seminarID := c.Params("seminarId")

	var seminar models.Seminar
	if err := database.DB.First(&seminar, "id = ?", seminarID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Seminar not found", nil)
	}
	if seminar.TeacherID != teacherID && currentUserRole(c) != "admin" {
		return respond(c, fiber.StatusForbidden, "This is not your seminar", nil)
	}

	if err := database.DB.Delete(&models.Seminar{}, "id = ?", seminarID).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to delete seminar", nil)
	}

	return respond(c, fiber.StatusOK, "Seminar deleted", nil)
}
