package routes

import (
	"github.com/edumart/course_market/handlers"
	"github.com/edumart/course_market/middleware"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Public browse surface.
	api.Get("/courses", handlers.GetCourses)
	api.Get("/courses/:courseId", handlers.GetCourse)
	api.Get("/courses/:courseId/lectures", handlers.GetCourseLectures)
	api.Get("/courses/:courseId/reviews", handlers.GetCourseReviews)

	// Teacher course management.
	teacher := api.Group("/teacher/courses", middleware.Protected(), middleware.TeacherRequired())
	teacher.Get("", handlers.GetMyCourses)
	teacher.Post("", handlers.CreateCourse)
	teacher.Patch("/:courseId", handlers.UpdateCourse)
	teacher.Post("/:courseId/publish", handlers.PublishCourse)
	teacher.Post("/:courseId/complete", handlers.CompleteCourse)
	teacher.Get("/:courseId/enrollments", handlers.GetCourseEnrollments)
	teacher.Post("/:courseId/lectures", handlers.CreateLecture)
	teacher.Patch("/lectures/:lectureId", handlers.UpdateLecture)
	teacher.Delete("/lectures/:lectureId", handlers.DeleteLecture)
}
