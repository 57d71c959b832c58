package routes

import (
	"github.com/edumart/course_market/handlers"
	"github.com/edumart/course_market/middleware"
	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	notif := api.Group("/notifications", middleware.Protected())
	notif.Get("", handlers.GetMyNotifications)
	notif.Post("/:notificationId/read", handlers.MarkNotificationRead)

	// Realtime channel; auth happens inside the socket handler.
	app.Use("/ws/notifications", handlers.WebsocketUpgrade)
	app.Get("/ws/notifications", handlers.NotificationSocket())
}
