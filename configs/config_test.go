package config

import "testing"

func TestTeacherSplitRatio(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want float64
	}{
		{name: "unset falls back", env: "", want: 0.8},
		{name: "explicit ratio", env: "0.7", want: 0.7},
		{name: "full ratio", env: "1", want: 1},
		{name: "malformed falls back", env: "eighty percent", want: 0.8},
		{name: "zero falls back", env: "0", want: 0.8},
		{name: "negative falls back", env: "-0.5", want: 0.8},
		{name: "above one falls back", env: "1.5", want: 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEACHER_SPLIT_RATIO", tt.env)
			if got := TeacherSplitRatio(); got != tt.want {
				t.Errorf("TeacherSplitRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}
