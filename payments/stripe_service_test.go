package payments

import "testing"

var _ Gateway = StripeGateway{}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{price: 50, want: 5000},
		{price: 10, want: 1000},
		{price: 9.99, want: 999},
		{price: 0.01, want: 1},
		{price: 0.005, want: 1}, // rounds half up
		{price: 0.004, want: 0},
		{price: 0, want: 0},
		{price: 19.999, want: 2000},
	}
	for _, tt := range tests {
		if got := MinorUnits(tt.price); got != tt.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}
