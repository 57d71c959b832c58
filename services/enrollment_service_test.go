package services

import (
	"errors"
	"testing"
)

func TestSeatAvailable(t *testing.T) {
	tests := []struct {
		name     string
		enrolled int
		capacity int
		wantErr  bool
	}{
		{name: "empty course", enrolled: 0, capacity: 1},
		{name: "one seat left", enrolled: 9, capacity: 10},
		{name: "single-seat course full", enrolled: 1, capacity: 1, wantErr: true},
		{name: "exactly full", enrolled: 10, capacity: 10, wantErr: true},
		{name: "over capacity", enrolled: 11, capacity: 10, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := seatAvailable(tt.enrolled, tt.capacity)
			if tt.wantErr != errors.Is(err, ErrCapacityExceeded) {
				t.Errorf("seatAvailable(%d, %d) = %v, wantErr %v", tt.enrolled, tt.capacity, err, tt.wantErr)
			}
		})
	}
}
