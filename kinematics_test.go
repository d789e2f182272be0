package shmsplot

import (
	"math"
	"testing"
)

func TestCalcQ2(t *testing.T) {
	for _, tc := range []struct {
		e, p, theta float64
		want        float64
	}{
		{e: 10.6, p: 8.5, theta: 0, want: 0},
		{e: 0, p: 3, theta: 0.3, want: 0},
		{e: 2, p: 1, theta: math.Pi / 2, want: 4},
		{e: 2, p: 1.5, theta: math.Pi, want: 12},
	} {
		got := CalcQ2(tc.e, tc.p, tc.theta)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("CalcQ2(%v, %v, %v) = %v, want %v", tc.e, tc.p, tc.theta, got, tc.want)
		}
	}
}

func TestCalcW2(t *testing.T) {
	m2 := ProtonMass * ProtonMass
	for _, tc := range []struct {
		e, p, theta float64
		want        float64
	}{
		{e: 5, p: 5, theta: 0, want: m2},
		{e: 10.6, p: 10.6, theta: 0, want: m2},
		{e: 3, p: 2, theta: 0, want: m2 + 2*ProtonMass},
		{e: 2, p: 1, theta: math.Pi / 2, want: m2 + 2*ProtonMass - 4},
	} {
		got := CalcW2(tc.e, tc.p, tc.theta)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("CalcW2(%v, %v, %v) = %v, want %v", tc.e, tc.p, tc.theta, got, tc.want)
		}
	}
}
