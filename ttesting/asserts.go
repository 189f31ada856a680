// Package ttesting holds small assertion helpers for table tests.
package ttesting

import (
	"errors"
	"math"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

// AssertEqualFloat compares with an absolute tolerance of 1e-9.
func AssertEqualFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("got %g; want %g", got, want)
		}
	})
}

func AssertInRangeFloat(t *testing.T, name string, got, wantMin, wantMax float64) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got < wantMin || got > wantMax {
			t.Errorf("got %g; want [%g,%g]", got, wantMin, wantMax)
		}
	})
}

func AssertErrorIs(t *testing.T, name string, got, want error) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if !errors.Is(got, want) {
			t.Errorf("got error %v; want %v", got, want)
		}
	})
}
