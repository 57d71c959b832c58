package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	NotificationStatusUnread = "unread"
	NotificationStatusRead   = "read"
)

// Notification is addressed either to one user (UserID set) or broadcast to a
// role (Role set). Losing the realtime publish is fine; the row is the record.
type Notification struct {
	ID      uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  *uuid.UUID     `gorm:"index" json:"user_id"`
	Role    *string        `gorm:"size:20;index" json:"role"`
	Type    string         `gorm:"size:50;not null" json:"type"`
	Message string         `gorm:"type:text;not null" json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data"`
	Status  string         `gorm:"size:20;not null;default:'unread'" json:"status"`
	ReadAt  *time.Time     `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
