package routes

import (
	"github.com/edumart/course_market/handlers"
	"github.com/edumart/course_market/middleware"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/seminars", handlers.GetSeminars)
	api.Get("/content", handlers.ListContent)
	api.Get("/content/:slug", handlers.GetContent)

	upload := api.Group("/uploads", middleware.Protected(), middleware.TeacherRequired())
	upload.Get("/signature", handlers.GenerateUploadSignature)
}
