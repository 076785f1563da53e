package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name   string
		v      float64
		lo, hi float64
		want   float64
	}{
		{"inside", 0.4, 0, 1, 0.4},
		{"below", -3, 0, 1, 0},
		{"above", 7, 0, 1, 1},
		{"lower_edge", 0, 0, 1, 0},
		{"upper_edge", 1, 0, 1, 1},
		{"nan", math.NaN(), 0, 1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestRoundHundredths(t *testing.T) {
	cases := []struct {
		v    float64
		want float64
	}{
		{0.33, 0.33},
		{0.334, 0.33},
		{0.335, 0.34},
		{0.1 + 0.2, 0.3},
		{1, 1},
		{0, 0},
	}

	for _, c := range cases {
		if got := RoundHundredths(c.v); got != c.want {
			t.Fatalf("RoundHundredths(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Fatalf("expected 12.5, got %v", got)
	}
}
