package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_student_course" json:"student_id"`
	CourseID  uuid.UUID `gorm:"not null;uniqueIndex:idx_student_course" json:"course_id"`

	// Gateway payment reference from the charge that created this enrollment.
	PaymentRef *string `gorm:"size:255" json:"payment_ref"`

	TeacherPaid bool       `gorm:"not null;default:false" json:"teacher_paid"`
	PaidAt      *time.Time `json:"paid_at"`

	Student User   `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Course  Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
