package handlers

import (
	"strconv"
	"time"

	config "github.com/edumart/course_market/configs"
	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	ws "github.com/edumart/course_market/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GetMyNotifications returns the caller's notifications, direct and
// role-addressed, unread first.
func GetMyNotifications(c *fiber.Ctx) error {
	userID := currentUserID(c)
	role := currentUserRole(c)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	var items []models.Notification
	err := database.DB.
		Where("user_id = ? OR role = ?", userID, role).
		Order("status desc").
		Order("created_at desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&items).Error
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to fetch notifications", nil)
	}

	return respond(c, fiber.StatusOK, "OK", items)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	userID := currentUserID(c)
	notificationID := c.Params("notificationId")

	var n models.Notification
	if err := database.DB.First(&n, "id = ?", notificationID).Error; err != nil {
		return respond(c, fiber.StatusNotFound, "Notification not found", nil)
	}
	if n.UserID != nil && *n.UserID != userID {
		return respond(c, fiber.StatusForbidden, "This is not your notification", nil)
	}

	now := time.Now()
	n.Status = models.NotificationStatusRead
	n.ReadAt = &now
	if err := database.DB.Save(&n).Error; err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to update notification", nil)
	}

	return respond(c, fiber.StatusOK, "Notification marked as read", n)
}

// NotificationSocket upgrades to a websocket and parks the connection in the
// hub until the client goes away. The JWT rides in the token query parameter
// because browsers cannot set headers on websocket upgrades.
func NotificationSocket() fiber.Handler {
	return websocketcontrib.New(func(conn *websocketcontrib.Conn) {
		tokenStr := conn.Query("token")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(config.Config("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			conn.Close()
			return
		}
		userID, err := uuid.Parse(claims["user_id"].(string))
		if err != nil {
			conn.Close()
			return
		}
		role, _ := claims["role"].(string)

		client := &ws.Client{UserID: userID, Role: role, Conn: conn}
		ws.Register <- client
		defer func() {
			ws.Unregister <- client
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}

// WebsocketUpgrade rejects non-websocket requests before the upgrade handler.
func WebsocketUpgrade(c *fiber.Ctx) error {
	if websocketcontrib.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
