package axis

import (
	"math"
	"testing"
)

func TestShapeFixedPoints(t *testing.T) {
	tests := []struct {
		name                         string
		deadzone, expo, gain         float64
	}{
		{"identity", 0, 0, 1},
		{"deadzone and positive expo", 0.2, 0.5, 1},
		{"negative expo", 0.1, -0.5, 1},
		{"gain 2", 0, 0, 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Shape(0, test.deadzone, test.expo, test.gain); got != 0 {
				t.Errorf("Shape(0, ...) = %v, want 0", got)
			}

			want := test.gain
			if got := Shape(1, test.deadzone, test.expo, test.gain); math.Abs(got-clamp(want, -1, 1)) > 1e-6 {
				t.Errorf("Shape(1, ...) = %v, want %v", got, clamp(want, -1, 1))
			}

			if got := Shape(-1, test.deadzone, test.expo, test.gain); math.Abs(got-clamp(-want, -1, 1)) > 1e-6 {
				t.Errorf("Shape(-1, ...) = %v, want %v", got, clamp(-want, -1, 1))
			}
		})
	}
}

func TestDeadzoneBoundary(t *testing.T) {
	if got := Deadzone(0.1, 0.1); got != 0 {
		t.Errorf("Deadzone(0.1, 0.1) = %v, want 0 (exactly at the edge)", got)
	}

	if got := Deadzone(0.05, 0.1); got != 0 {
		t.Errorf("Deadzone(0.05, 0.1) = %v, want 0 (inside the deadzone)", got)
	}

	if got := Deadzone(1, 0.1); math.Abs(got-1) > 1e-9 {
		t.Errorf("Deadzone(1, 0.1) = %v, want 1", got)
	}
}

func TestExpoMonotonic(t *testing.T) {
	for _, e := range []float64{-0.8, -0.3, 0, 0.3, 0.8} {
		prev := -1.0

		for i := 0; i <= 20; i++ {
			x := -1 + float64(i)*0.1
			y := Expo(x, e)

			if y < prev-1e-6 {
				t.Fatalf("Expo(x, %v) not monotonic: x=%v y=%v < prev=%v", e, x, y, prev)
			}

			prev = y
		}
	}
}

func TestNormalizeAbsClampsToRange(t *testing.T) {
	if got := NormalizeAbs(0, 0, 255); got != -1 {
		t.Errorf("NormalizeAbs(0, 0, 255) = %v, want -1", got)
	}

	if got := NormalizeAbs(255, 0, 255); got != 1 {
		t.Errorf("NormalizeAbs(255, 0, 255) = %v, want 1", got)
	}

	if got := NormalizeAbs(127, 0, 254); math.Abs(got) > 1e-2 {
		t.Errorf("NormalizeAbs(127, 0, 254) = %v, want ~0", got)
	}
}

func TestRelAccumulatorCarriesFraction(t *testing.T) {
	var acc RelAccumulator

	var total int32
	for i := 0; i < 10; i++ {
		total += acc.Tick(0.3)
	}

	if total != 3 {
		t.Errorf("10 ticks of speed 0.3 summed to %d, want 3", total)
	}
}

func TestAbsAccumulatorSaturates(t *testing.T) {
	acc := NewAbsAccumulator(0, 100)

	if got := acc.Add(1000); got != 100 {
		t.Errorf("Add(1000) = %d, want clamped to 100", got)
	}

	acc.Center()

	if got := acc.Add(-1000); got != 0 {
		t.Errorf("Add(-1000) after Center = %d, want clamped to 0", got)
	}
}
