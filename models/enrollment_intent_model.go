package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	IntentStatusCreated   = "created"
	IntentStatusCharged   = "charged"
	IntentStatusFulfilled = "fulfilled"
	IntentStatusFailed    = "failed"
)

// EnrollmentIntent is written before the charge and marked fulfilled after the
// enrollment commits, so an intent stuck in "charged" marks money that moved
// without a matching enrollment. The reconcile job sweeps those.
type EnrollmentIntent struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentID uuid.UUID `gorm:"not null;index"`
	CourseID  uuid.UUID `gorm:"not null;index"`

	AmountCents     int64   `gorm:"not null"`
	Currency        string  `gorm:"size:3;not null"`
	GatewayIntentID *string `gorm:"size:255;unique"`
	Status          string  `gorm:"size:20;not null;default:'created'"`
	LastError       *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
