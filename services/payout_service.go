package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	config "github.com/edumart/course_market/configs"
	"github.com/edumart/course_market/database"
	"github.com/edumart/course_market/models"
	"github.com/edumart/course_market/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComputeTeacherShare returns the teacher's cut of one enrollment in
// minor-currency units: round(price * splitRatio * 100).
func ComputeTeacherShare(price, splitRatio float64) int64 {
	return int64(math.Round(price * splitRatio * 100))
}

// TransferAmount is the aggregate payout for unpaidCount enrollments.
func TransferAmount(price, splitRatio float64, unpaidCount int) int64 {
	return ComputeTeacherShare(price, splitRatio) * int64(unpaidCount)
}

// completable validates the course-level payout preconditions.
func completable(status string, enrollmentCount int) error {
	if status == models.CourseStatusCompleted || status == models.CourseStatusDeleted {
		return fmt.Errorf("%w: course is already %s", ErrInvalidState, status)
	}
	if enrollmentCount == 0 {
		return fmt.Errorf("%w: course has no enrollments", ErrInvalidState)
	}
	return nil
}

// CourseCompletion summarizes a finished payout run.
type CourseCompletion struct {
	Course              models.Course `json:"course"`
	TransferID          string        `json:"transfer_id"`
	TransferAmountCents int64         `json:"transfer_amount_cents"`
	PaidEnrollments     int           `json:"paid_enrollments"`
}

// CompleteCourse finalizes a course and pays the teacher for every enrollment
// not yet paid out. One aggregate transfer, then lectures, course status and
// enrollment flags flip in the same transaction.
//
// The course row stays locked across the gateway transfer: a concurrent
// completion blocks on the lock and then fails the status re-check, which is
// what closes the double-payout window.
func CompleteCourse(courseID uuid.UUID) (*CourseCompletion, error) {
	var course models.Course
	if err := database.DB.Preload("Enrollments").First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if err := completable(course.Status, len(course.Enrollments)); err != nil {
		return nil, err
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", course.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	if teacher.PayoutAccountID == nil || *teacher.PayoutAccountID == "" {
		return nil, fmt.Errorf("%w: teacher has no payout destination configured", ErrPayoutFailed)
	}

	share := ComputeTeacherShare(course.Price, config.TeacherSplitRatio())

	completion := &CourseCompletion{}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var locked models.Course
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, "id = ?", courseID).Error; err != nil {
			return err
		}
		if locked.Status == models.CourseStatusCompleted || locked.Status == models.CourseStatusDeleted {
			return fmt.Errorf("%w: course is already %s", ErrInvalidState, locked.Status)
		}

		var unpaid []models.Enrollment
		if err := tx.Where("course_id = ? AND teacher_paid = ?", courseID, false).Find(&unpaid).Error; err != nil {
			return err
		}

		transferAmount := share * int64(len(unpaid))
		if transferAmount < 1 {
			return fmt.Errorf("%w: transfer amount below minimum", ErrPayoutFailed)
		}

		transfer, err := Gateway.Transfer(transferAmount, strings.ToLower(locked.Currency),
			*teacher.PayoutAccountID, "course:"+courseID.String())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPayoutFailed, err)
		}

		now := time.Now()
		if err := tx.Model(&models.Lecture{}).Where("course_id = ?", courseID).
			Update("status", models.LectureStatusComplete).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Enrollment{}).Where("course_id = ? AND teacher_paid = ?", courseID, false).
			Updates(map[string]interface{}{"teacher_paid": true, "paid_at": now}).Error; err != nil {
			return err
		}

		earned := float64(transferAmount) / 100
		released := locked.Price * float64(len(unpaid))
		if err := tx.Model(&models.Teacher{}).Where("user_id = ?", locked.TeacherID).
			Updates(map[string]interface{}{
				"earnings":         gorm.Expr("earnings + ?", earned),
				"pending_earnings": gorm.Expr("GREATEST(pending_earnings - ?, 0)", released),
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Course{}).Where("id = ?", courseID).
			Update("status", models.CourseStatusCompleted).Error; err != nil {
			return err
		}
		locked.Status = models.CourseStatusCompleted

		completion.Course = locked
		completion.TransferID = transfer.TransferID
		completion.TransferAmountCents = transferAmount
		completion.PaidEnrollments = len(unpaid)
		return nil
	})
	if err != nil {
		return nil, err
	}

	notifications.Dispatch(course.TeacherID, "course.completed",
		fmt.Sprintf("Course %s is complete and your payout is on its way", course.Title),
		map[string]interface{}{"course_id": courseID.String(), "transfer_id": completion.TransferID})
	for _, e := range course.Enrollments {
		notifications.Dispatch(e.StudentID, "review.request",
			fmt.Sprintf("%s is complete. Tell us what you thought of it!", course.Title),
			map[string]interface{}{"course_id": courseID.String()})
	}

	return completion, nil
}

// PayoutEnrollment pays the teacher for a single enrollment, grouped under the
// original payment transaction. Shares the per-enrollment TeacherPaid claim
// with CompleteCourse, so the two paths cannot pay the same seat twice.
func PayoutEnrollment(enrollmentID uuid.UUID) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := database.DB.Preload("Course").First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	var teacher models.Teacher
	if err := database.DB.First(&teacher, "user_id = ?", enrollment.Course.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	if teacher.PayoutAccountID == nil || *teacher.PayoutAccountID == "" {
		return nil, fmt.Errorf("%w: teacher has no payout destination configured", ErrPayoutFailed)
	}

	share := ComputeTeacherShare(enrollment.Course.Price, config.TeacherSplitRatio())
	if share < 1 {
		return nil, fmt.Errorf("%w: transfer amount below minimum", ErrPayoutFailed)
	}

	transferGroup := "enrollment:" + enrollmentID.String()
	if enrollment.PaymentRef != nil && *enrollment.PaymentRef != "" {
		transferGroup = *enrollment.PaymentRef
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Course row first: bulk completion payouts lock the same row, so the
		// two payout paths serialize instead of reading stale paid flags.
		var lockedCourse models.Course
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lockedCourse, "id = ?", enrollment.CourseID).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
			return err
		}
		if enrollment.TeacherPaid {
			return fmt.Errorf("%w: enrollment has already been paid out", ErrInvalidState)
		}

		if _, err := Gateway.Transfer(share, strings.ToLower(enrollment.Course.Currency),
			*teacher.PayoutAccountID, transferGroup); err != nil {
			return fmt.Errorf("%w: %v", ErrPayoutFailed, err)
		}

		now := time.Now()
		if err := tx.Model(&models.Enrollment{}).Where("id = ?", enrollmentID).
			Updates(map[string]interface{}{"teacher_paid": true, "paid_at": now}).Error; err != nil {
			return err
		}
		enrollment.TeacherPaid = true
		enrollment.PaidAt = &now

		return tx.Model(&models.Teacher{}).Where("user_id = ?", enrollment.Course.TeacherID).
			Updates(map[string]interface{}{
				"earnings":         gorm.Expr("earnings + ?", float64(share)/100),
				"pending_earnings": gorm.Expr("GREATEST(pending_earnings - ?, 0)", enrollment.Course.Price),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	notifications.Dispatch(enrollment.Course.TeacherID, "payout.enrollment",
		fmt.Sprintf("You have been paid for an enrollment in %s", enrollment.Course.Title),
		map[string]interface{}{"enrollment_id": enrollmentID.String()})

	return &enrollment, nil
}
