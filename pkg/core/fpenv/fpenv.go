// Package fpenv models the piece of the ambient floating-point environment the
// quantization kernel depends on: the process-wide rounding mode.
//
// Hardware exposes the mode as a control register (MXCSR.RC on x86, FPCR.RMode
// on Arm) that the surrounding runtime configures once at startup. Go gives no
// portable access to that register, so the mode is carried instead as an explicit
// read-only value threaded into the rounding primitives. Callers must pass the
// mode the surrounding runtime configured, or results will not be bit-exact with
// the rest of the numeric pipeline; when in doubt, use [Default].
//
// Nothing in this package mutates process state: a RoundingMode is a plain value
// and every function is pure, so concurrent use needs no synchronization.
package fpenv

import "math"

// RoundingMode selects how a fractional floating-point value rounds to an
// integer. The four values mirror the four IEEE 754 rounding-direction
// attributes implemented by hardware rounding control fields.
type RoundingMode uint8

//go:generate go tool enumer -type=RoundingMode -output=roundingmode_enumer.go

const (
	// NearestEven rounds to the nearest integer, ties to the even one.
	// This is the hardware default.
	NearestEven RoundingMode = iota

	// TowardNegative rounds down, towards negative infinity.
	TowardNegative

	// TowardPositive rounds up, towards positive infinity.
	TowardPositive

	// TowardZero truncates the fractional part.
	TowardZero
)

// Default is the rounding mode of a process that never touched its
// floating-point control state: round-to-nearest, ties-to-even.
func Default() RoundingMode {
	return NearestEven
}

// Round converts f to an int32 according to the rounding mode.
//
// NaN and values outside the int32 range collapse to math.MinInt32, the same
// "integer indefinite" result x86's cvtss2si produces. Callers that need a
// defined result for out-of-range values must saturate afterwards, which turns
// that sentinel into the destination type's lowest value.
func (mode RoundingMode) Round(f float32) int32 {
	return mode.round(float64(f))
}

// Round64 rounds v to an int32 under the same contract as [Round].
//
// The value is narrowed to float32 before rounding, for bit-exact parity with
// pipelines whose accumulators are float32. The double rounding this implies
// is intentional.
func (mode RoundingMode) Round64(v float64) int32 {
	return mode.Round(float32(v))
}

func (mode RoundingMode) round(v float64) int32 {
	var r float64
	switch mode {
	case TowardNegative:
		r = math.Floor(v)
	case TowardPositive:
		r = math.Ceil(v)
	case TowardZero:
		r = math.Trunc(v)
	default:
		// NearestEven, and the only defined behavior for invalid modes.
		r = math.RoundToEven(v)
	}
	if math.IsNaN(r) || r < math.MinInt32 || r > math.MaxInt32 {
		return math.MinInt32
	}
	return int32(r)
}
