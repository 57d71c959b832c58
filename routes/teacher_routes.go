package routes

import (
	"github.com/edumart/course_market/handlers"
	"github.com/edumart/course_market/middleware"
	"github.com/gofiber/fiber/v2"
)

func TeacherRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/teachers/:teacherId", handlers.GetTeacherProfile)
	api.Post("/teachers/apply", middleware.Protected(), handlers.ApplyToBeATeacher)

	teacher := api.Group("/teacher", middleware.Protected(), middleware.TeacherRequired())
	teacher.Put("/payout-account", handlers.SetPayoutAccount)
	teacher.Get("/earnings", handlers.GetMyEarnings)

	seminars := api.Group("/teacher/seminars", middleware.Protected(), middleware.TeacherRequired())
	seminars.Get("", handlers.GetMySeminars)
	seminars.Post("", handlers.CreateSeminar)
	seminars.Patch("/:seminarId", handlers.UpdateSeminar)
	seminars.Delete("/:seminarId", handlers.DeleteSeminar)
}
