package routes

import (
	"github.com/edumart/course_market/handlers"
	"github.com/edumart/course_market/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("/intent/:courseId", handlers.CreatePaymentIntent)

	admin := api.Group("/admin/payouts", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/enrollments/:enrollmentId", handlers.PayoutEnrollment)
}
