package routes

import (
	"github.com/edumart/course_market/handlers"
	"github.com/edumart/course_market/middleware"
	"github.com/gofiber/fiber/v2"
)

func EnrollmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	enrollments := api.Group("/enrollments", middleware.Protected())
	enrollments.Post("", handlers.Enroll)
	enrollments.Get("/me", handlers.GetMyEnrollments)
	enrollments.Post("/courses/:courseId/reviews", handlers.CreateReview)
}
