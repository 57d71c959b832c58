package services

import "errors"

// Workflow errors, one per user-facing failure condition. Handlers map these
// to HTTP statuses; wrapped detail rides along via fmt.Errorf("%w: ...").
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrTeacherNotFound     = errors.New("teacher account not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrCapacityExceeded    = errors.New("course is already at full capacity")
	ErrDuplicateEnrollment = errors.New("student is already enrolled in this course")
	ErrPaymentFailed       = errors.New("payment failed")
	ErrPayoutFailed        = errors.New("payout failed")
	ErrInvalidState        = errors.New("operation not allowed in current state")
)
