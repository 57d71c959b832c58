package services

import (
	"errors"
	"testing"

	"github.com/edumart/course_market/models"
)

func TestComputeTeacherShare(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		ratio float64
		want  int64
	}{
		{name: "fifty dollars at 80%", price: 50, ratio: 0.8, want: 4000},
		{name: "ten dollars at 80%", price: 10, ratio: 0.8, want: 800},
		{name: "rounds half up", price: 10.57, ratio: 0.8, want: 846},
		{name: "full ratio", price: 12.34, ratio: 1, want: 1234},
		{name: "sub-cent price rounds to zero", price: 0.005, ratio: 0.8, want: 0},
		{name: "free course", price: 0, ratio: 0.8, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTeacherShare(tt.price, tt.ratio); got != tt.want {
				t.Errorf("ComputeTeacherShare(%v, %v) = %d, want %d", tt.price, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestTransferAmount(t *testing.T) {
	// Three $10 enrollments at the 80% split transfer $24.00, and the
	// teacher's realized earnings move by the same amount.
	got := TransferAmount(10, 0.8, 3)
	if got != 2400 {
		t.Fatalf("TransferAmount(10, 0.8, 3) = %d, want 2400", got)
	}
	if earned := float64(got) / 100; earned != 24.00 {
		t.Fatalf("earnings credit = %v, want 24.00", earned)
	}

	if got := TransferAmount(50, 0.8, 1); got != 4000 {
		t.Errorf("TransferAmount(50, 0.8, 1) = %d, want 4000", got)
	}
	if got := TransferAmount(10, 0.8, 0); got != 0 {
		t.Errorf("TransferAmount with no unpaid enrollments = %d, want 0", got)
	}
}

func TestCompletable(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		enrollments int
		wantErr     bool
	}{
		{name: "active with enrollments", status: models.CourseStatusActive, enrollments: 3},
		{name: "draft with enrollments", status: models.CourseStatusDraft, enrollments: 1},
		{name: "already completed", status: models.CourseStatusCompleted, enrollments: 3, wantErr: true},
		{name: "soft deleted", status: models.CourseStatusDeleted, enrollments: 3, wantErr: true},
		{name: "no enrollments", status: models.CourseStatusActive, enrollments: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := completable(tt.status, tt.enrollments)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidState) {
					t.Errorf("completable() = %v, want ErrInvalidState", err)
				}
				return
			}
			if err != nil {
				t.Errorf("completable() = %v, want nil", err)
			}
		})
	}
}
