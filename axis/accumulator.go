package axis

import "math"

// RelAccumulator truncates a continuous speed value into whole-unit
// REL ticks while carrying the fractional remainder forward, so a
// steady sub-1-unit-per-tick speed still accumulates to the right
// total over many ticks instead of rounding to zero every time.
type RelAccumulator struct {
	carry float64
}

// Tick consumes one tick's worth of speed (units per tick) and returns
// the whole-unit delta to emit this tick.
func (a *RelAccumulator) Tick(speed float64) int32 {
	a.carry += speed

	// Snap a carry that floating-point accumulation left a hair away
	// from a whole unit onto that unit, so repeated fractional speeds
	// sum to the exact total.
	if r := math.Round(a.carry); math.Abs(a.carry-r) < 1e-9 {
		a.carry = r
	}

	whole, frac := math.Modf(a.carry)
	a.carry = frac

	return int32(whole)
}

// Reset clears any carried fractional remainder, used when a mapping
// releases so the next activation starts clean.
func (a *RelAccumulator) Reset() {
	a.carry = 0
}

// AbsAccumulator accumulates REL ticks into a virtual absolute
// position clamped to [min, max], used by RelToAbsHandler.
type AbsAccumulator struct {
	pos      float64
	min, max int32
}

// NewAbsAccumulator starts the virtual position centered within
// [min, max].
func NewAbsAccumulator(min, max int32) *AbsAccumulator {
	return &AbsAccumulator{pos: (float64(min) + float64(max)) / 2, min: min, max: max}
}

// Add accumulates delta (already gain/expo-shaped, in axis units) into
// the virtual position, saturating at the boundaries, and returns the
// new position as an int32 ready for ABS emission.
func (a *AbsAccumulator) Add(delta float64) int32 {
	a.pos += delta

	if a.pos < float64(a.min) {
		a.pos = float64(a.min)
	}

	if a.pos > float64(a.max) {
		a.pos = float64(a.max)
	}

	return int32(a.pos)
}

// Center resets the virtual position to the midpoint of [min, max],
// used when the input has been absent for longer than release_timeout
// and the axis is treated as returning to the deadzone.
func (a *AbsAccumulator) Center() {
	a.pos = (float64(a.min) + float64(a.max)) / 2
}
