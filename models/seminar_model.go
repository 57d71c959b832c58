package models

import (
	"time"

	"github.com/google/uuid"
)

type Seminar struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID   uuid.UUID `gorm:"not null;index" json:"teacher_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	MeetingLink *string   `gorm:"size:255" json:"meeting_link"`
	Capacity    int       `gorm:"not null;default:0" json:"capacity"`

	Teacher User `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
