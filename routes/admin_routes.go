package routes

import (
	"github.com/edumart/course_market/handlers"
	"github.com/edumart/course_market/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/users", handlers.GetAllUsers)
	admin.Post("/users/:userId/deactivate", handlers.DeactivateUser)
	admin.Get("/teachers/pending", handlers.GetPendingTeachers)
	admin.Post("/teachers/:teacherId/approve", handlers.ApproveTeacher)
	admin.Delete("/courses/:courseId", handlers.DeleteCourse)
	admin.Get("/intents/stuck", handlers.GetStuckIntents)
	admin.Post("/content", handlers.CreateContent)
	admin.Put("/content/:slug", handlers.UpdateContent)
	admin.Delete("/content/:slug", handlers.DeleteContent)
}
