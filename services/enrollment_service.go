package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/edumart/course_market/notifications"
	"github.com/edumart/course_market/payments"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gateway is swapped for a fake in tests.
var Gateway payments.Gateway = payments.StripeGateway{}

// seatAvailable enforces the capacity invariant: enrollments never exceed
// the seat range of an active course.
func seatAvailable(enrolled, capacity int) error {
	if enrolled >= capacity {
		return ErrCapacityExceeded
	}
	return nil
}

// Enroll charges the student for the course and records the enrollment.
//
// The charge happens against an EnrollmentIntent written first, so a crash
// between charge and commit leaves the intent in "charged" for the reconcile
// sweep instead of silently losing money. The seat is only taken inside the
// fulfillment transaction, under a course row lock.
func Enroll(studentID, courseID uuid.UUID, paymentMethod string) (*models.Enrollment, error) {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if course.Status == models.CourseStatusDeleted {
		return nil, ErrCourseNotFound
	}
	if course.Status != models.CourseStatusActive {
		return nil, fmt.Errorf("%w: course is not open for enrollment", ErrInvalidState)
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", course.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	var student models.User
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	var existing models.Enrollment
	err := database.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEnrollment
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Pre-check only; the authoritative check runs again under the row lock.
	if err := seatAvailable(course.EnrolledCount, course.StudentRange); err != nil {
		return nil, err
	}

	amount := payments.MinorUnits(course.Price)
	currency := strings.ToLower(course.Currency)

	intent := models.EnrollmentIntent{
		StudentID:   studentID,
		CourseID:    courseID,
		AmountCents: amount,
		Currency:    course.Currency,
	}
	if err := database.DB.Create(&intent).Error; err != nil {
		return nil, err
	}

	charge, err := Gateway.CapturePayment(amount, currency, paymentMethod, map[string]string{
		"course_id":  courseID.String(),
		"student_id": studentID.String(),
	})
	if err != nil {
		msg := err.Error()
		database.DB.Model(&intent).Updates(map[string]interface{}{
			"status":     models.IntentStatusFailed,
			"last_error": msg,
		})
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if err := database.DB.Model(&intent).Updates(map[string]interface{}{
		"status":            models.IntentStatusCharged,
		"gateway_intent_id": charge.IntentID,
	}).Error; err != nil {
		log.Printf("🔥 CRITICAL: charged intent %s could not be marked charged: %v", intent.ID, err)
	}
	intent.Status = models.IntentStatusCharged
	intent.GatewayIntentID = &charge.IntentID

	enrollment, err := FulfillIntent(&intent)
	if err != nil {
		// Money has moved; the intent stays "charged" and the reconcile
		// sweep retries the durable half.
		return nil, err
	}

	notifications.Dispatch(course.TeacherID, "enrollment.new",
		fmt.Sprintf("%s enrolled in %s", student.FullName, course.Title),
		map[string]interface{}{"course_id": courseID.String(), "enrollment_id": enrollment.ID.String()})
	notifications.Dispatch(studentID, "enrollment.success",
		fmt.Sprintf("You are enrolled in %s", course.Title),
		map[string]interface{}{"course_id": courseID.String(), "enrollment_id": enrollment.ID.String()})

	go notifications.SendEmail(student.FullName, student.Email, "Enrollment Confirmed",
		fmt.Sprintf("<h1>Enrollment Confirmed</h1><p>Your payment was successful and you are now enrolled in <b>%s</b>.</p>", course.Title))

	return enrollment, nil
}

// FulfillIntent runs the durable half of an enrollment: take the seat, write
// the record, credit pending earnings, close the intent. Re-runnable for a
// stuck intent; the unique (student, course) index makes a second run fail
// as a duplicate instead of double-enrolling.
func FulfillIntent(intent *models.EnrollmentIntent) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&course, "id = ?", intent.CourseID).Error; err != nil {
			return err
		}
		if err := seatAvailable(course.EnrolledCount, course.StudentRange); err != nil {
			return err
		}

		enrollment = models.Enrollment{
			StudentID:  intent.StudentID,
			CourseID:   intent.CourseID,
			PaymentRef: intent.GatewayIntentID,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEnrollment
			}
			return err
		}

		course.EnrolledCount++
		if err := tx.Save(&course).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Teacher{}).Where("user_id = ?", course.TeacherID).
			Update("pending_earnings", gorm.Expr("pending_earnings + ?", course.Price)).Error; err != nil {
			return err
		}

		return tx.Model(&models.EnrollmentIntent{}).Where("id = ?", intent.ID).
			Update("status", models.IntentStatusFulfilled).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// CreatePaymentIntent creates a client-side payment intent for the course
// price. No side effects beyond the gateway call.
func CreatePaymentIntent(courseID uuid.UUID) (*payments.ChargeResult, error) {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	result, err := Gateway.CreateIntent(payments.MinorUnits(course.Price), strings.ToLower(course.Currency), map[string]string{
		"course_id": courseID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	return result, nil
}
