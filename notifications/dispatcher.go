package notifications

import (
	"encoding/json"
	"log"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/edumart/course_market/websocket"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotifyUser persists a notification for one user and publishes it on their
// realtime channel. The row is the durable record; the publish is best effort
// and never fails the caller once the row is written.
func NotifyUser(userID uuid.UUID, notifType, message string, data map[string]interface{}) error {
	n := models.Notification{
		UserID:  &userID,
		Type:    notifType,
		Message: message,
		Data:    marshalData(data),
	}
	if err := database.DB.Create(&n).Error; err != nil {
		return err
	}

	websocket.Publish(websocket.UserChannel(userID), n)
	return nil
}

// NotifyRole broadcasts to everyone holding a role (e.g. all admins).
func NotifyRole(role, notifType, message string, data map[string]interface{}) error {
	n := models.Notification{
		Role:    &role,
		Type:    notifType,
		Message: message,
		Data:    marshalData(data),
	}
	if err := database.DB.Create(&n).Error; err != nil {
		return err
	}

	websocket.Publish(websocket.RoleChannel(role), n)
	return nil
}

// Dispatch is the fire-and-forget entry point used by the workflows after
// their transaction commits. Persistence failure is logged, never propagated.
func Dispatch(userID uuid.UUID, notifType, message string, data map[string]interface{}) {
	if err := NotifyUser(userID, notifType, message, data); err != nil {
		log.Printf("🔥 Failed to dispatch %q notification to %s: %v", notifType, userID, err)
	}
}

// DispatchRole is the fire-and-forget counterpart for role broadcasts.
func DispatchRole(role, notifType, message string, data map[string]interface{}) {
	if err := NotifyRole(role, notifType, message, data); err != nil {
		log.Printf("🔥 Failed to dispatch %q notification to role %s: %v", notifType, role, err)
	}
}

func marshalData(data map[string]interface{}) datatypes.JSON {
	if data == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal notification data: %v", err)
		return nil
	}
	return datatypes.JSON(raw)
}
