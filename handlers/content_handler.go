package handlers

import (
	"errors"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ContentRequest struct {
	Slug      string `json:"slug" validate:"required,min=2,max=100"`
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

func CreateContent(c *fiber.Ctx) error {
	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	content := models.Content{
		Slug:      req.Slug,
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	}
	if err := database.DB.Create(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return respond(c, fiber.StatusConflict, "A page with this slug already exists", nil)
		}
		return respond(c, fiber.StatusInternalServerError, "Failed to create content", nil)
	}

	return respond(c, fiber.StatusCreated, "Content created", content)
}

func UpdateContent(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Cannot parse JSON", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	var content models.Content
	if err := database.DB.First(&content, "slug = ?", slug).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Content not found", nil)
	}

	content.Slug = req.Slug
	content.Title = req.Title
	content.Body = req.Body
	content.Published = req.Published
	if err := database.DB.Save(&content).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to update content", nil)
	}

	return respond(c, fiber.StatusOK, "Content updated", content)
}

func DeleteContent(c *fiber.Ctx) error {
	slug := c.Params("slug")

	result := database.DB.Delete(&models.Content{}, "slug = ?", slug)
	if result.Error != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to delete content", nil)
	}
	if result.RowsAffected == 0 {
		return respond(c, fiber.StatusNotFound, "Content not found", nil)
	}

	return respond(c, fiber.StatusOK, "Content deleted", nil)
}

func GetContent(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var content models.Content
	if err := database.DB.First(&content, "slug = ? AND published = ?", slug, true).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Content not found", nil)
	}

	return respond(c, fiber.StatusOK, "OK", content)
}

func ListContent(c *fiber.Ctx) error {
	var pages []models.Content
	database.DB.Where("published = ?", true).Order("created_at desc").Find(&pages)

	return respond(c, fiber.StatusOK, "OK", pages)
}
