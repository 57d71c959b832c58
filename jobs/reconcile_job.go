package jobs

import (
	"errors"
	"log"
	"time"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/edumart/course_market/services"
)

// stuckIntentGrace keeps the sweep from racing a request that is still
// between charge and commit.
const stuckIntentGrace = 10 * time.Minute

// IsStuck reports whether a charged intent is old enough to reconcile.
func IsStuck(intent models.EnrollmentIntent, now time.Time) bool {
	return intent.Status == models.IntentStatusCharged &&
		now.Sub(intent.UpdatedAt) >= stuckIntentGrace
}

// ReconcileStuckIntents re-runs the fulfillment transaction for intents that
// charged but never produced an enrollment. Fulfillment closes the intent in
// the same transaction as the enrollment insert, so anything still charged
// here truly has no enrollment behind it. Intents that cannot be fulfilled
// anymore (seat gone, or a racing duplicate charge) are flagged for manual
// refund review; money is never silently dropped.
func ReconcileStuckIntents() {
	log.Println("Running job: ReconcileStuckIntents...")

	cutoff := time.Now().Add(-stuckIntentGrace)

	var stuck []models.EnrollmentIntent
	err := database.DB.
		Where("status = ? AND updated_at < ?", models.IntentStatusCharged, cutoff).
		Find(&stuck).Error
	if err != nil {
		log.Printf("Error fetching stuck enrollment intents: %v", err)
		return
	}

	for i := range stuck {
		intent := stuck[i]
		_, err := services.FulfillIntent(&intent)
		switch {
		case err == nil:
			log.Printf("✅ Reconciled stuck intent %s (student %s, course %s)",
				intent.ID, intent.StudentID, intent.CourseID)
		case errors.Is(err, services.ErrDuplicateEnrollment):
			msg := "student already enrolled via another charge; refund review required"
			database.DB.Model(&intent).Update("last_error", msg)
			log.Printf("🔥 Intent %s needs refund review: %s", intent.ID, msg)
		case errors.Is(err, services.ErrCapacityExceeded):
			msg := "course filled before fulfillment; refund review required"
			database.DB.Model(&intent).Update("last_error", msg)
			log.Printf("🔥 Intent %s needs refund review: %s", intent.ID, msg)
		default:
			log.Printf("Error reconciling intent %s: %v", intent.ID, err)
		}
	}
}
