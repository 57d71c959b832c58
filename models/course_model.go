package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CourseStatusDraft     = "draft"
	CourseStatusActive    = "active"
	CourseStatusCompleted = "completed"
	CourseStatusDeleted   = "delete"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID   uuid.UUID `gorm:"not null;index" json:"teacher_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Currency    string    `gorm:"size:3;not null;default:'USD'" json:"currency"`

	// StudentRange is the seat capacity; EnrolledCount is only ever moved
	// under a row lock so it cannot drift past StudentRange.
	StudentRange  int `gorm:"not null;default:1" json:"student_range"`
	EnrolledCount int `gorm:"not null;default:0" json:"enrolled_count"`

	Status       string  `gorm:"size:20;not null;default:'draft'" json:"status"`
	ThumbnailURL *string `gorm:"size:255" json:"thumbnail_url"`

	Teacher     User         `gorm:"foreignkey:TeacherID" json:"teacher,omitempty"`
	Enrollments []Enrollment `gorm:"foreignkey:CourseID" json:"enrollments,omitempty"`
	Lectures    []Lecture    `gorm:"foreignkey:CourseID" json:"lectures,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
