package helper

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "whole", in: 3, want: 3},
		{name: "two decimals kept", in: 2.75, want: 2.75},
		{name: "truncates noise", in: 2.500000001, want: 2.5},
		{name: "rounds up", in: 1.006, want: 1.01},
		{name: "rounds down", in: 1.004, want: 1},
		{name: "half up at hundredths", in: 1.125, want: 1.13},
		{name: "zero", in: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); got != tt.want {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
