package jobs

import (
	"testing"
	"time"

	"github.com/edumart/course_market/models"
)

func TestIsStuck(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		status string
		age    time.Duration
		want   bool
	}{
		{name: "charged and old", status: models.IntentStatusCharged, age: time.Hour, want: true},
		{name: "charged at grace boundary", status: models.IntentStatusCharged, age: stuckIntentGrace, want: true},
		{name: "charged but fresh", status: models.IntentStatusCharged, age: time.Minute, want: false},
		{name: "fulfilled never stuck", status: models.IntentStatusFulfilled, age: time.Hour, want: false},
		{name: "failed never stuck", status: models.IntentStatusFailed, age: time.Hour, want: false},
		{name: "created not yet charged", status: models.IntentStatusCreated, age: time.Hour, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := models.EnrollmentIntent{
				Status:    tt.status,
				UpdatedAt: now.Add(-tt.age),
			}
			if got := IsStuck(intent, now); got != tt.want {
				t.Errorf("IsStuck(%s, %v old) = %v, want %v", tt.status, tt.age, got, tt.want)
			}
		})
	}
}
