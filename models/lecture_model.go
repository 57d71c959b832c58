package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LectureStatusIncomplete = "incomplete"
	LectureStatusComplete   = "complete"
)

type Lecture struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID uuid.UUID `gorm:"not null;index" json:"course_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	VideoURL *string   `gorm:"size:255" json:"video_url"`
	Position int       `gorm:"not null;default:0" json:"position"`
	Status   string    `gorm:"size:20;not null;default:'incomplete'" json:"status"`

	Course Course `gorm:"foreignkey:CourseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
