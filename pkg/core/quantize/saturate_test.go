// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package quantize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomlx/quantize/pkg/core/fpenv"
)

func TestSaturateClampsToRange(t *testing.T) {
	// Values beyond the destination range land exactly on the range limits.
	assert.Equal(t, int8(127), Saturate[int8](int32(300)))
	assert.Equal(t, int8(-128), Saturate[int8](int32(-300)))
	assert.Equal(t, uint8(255), Saturate[uint8](int64(1000)))
	assert.Equal(t, uint8(0), Saturate[uint8](int64(-1)))
	assert.Equal(t, int16(math.MaxInt16), Saturate[int16](int32(math.MaxInt32)))
	assert.Equal(t, int32(math.MinInt32), Saturate[int32](int64(math.MinInt64)))
	assert.Equal(t, uint16(0), Saturate[uint16](int8(-5)))
	assert.Equal(t, int64(math.MaxInt64), Saturate[int64](uint64(math.MaxUint64)))

	// In-range values pass through unchanged.
	assert.Equal(t, int8(42), Saturate[int8](int32(42)))
	assert.Equal(t, int8(-42), Saturate[int8](int32(-42)))
	assert.Equal(t, uint8(200), Saturate[uint8](int32(200)))
	assert.Equal(t, int32(-70000), Saturate[int32](int64(-70000)))
}

func TestSaturateFloatingAccumulator(t *testing.T) {
	// Floating accumulators compare in float64; the narrowing after the clamp
	// truncates (rounding is a separate, earlier step).
	assert.Equal(t, int8(3), Saturate[int8](float32(3.9)))
	assert.Equal(t, int8(-3), Saturate[int8](float32(-3.9)))
	assert.Equal(t, int8(127), Saturate[int8](float32(1e10)))
	assert.Equal(t, uint8(0), Saturate[uint8](float64(-0.5)))
	assert.Equal(t, int32(math.MaxInt32), Saturate[int32](math.Inf(1)))
	assert.Equal(t, int32(math.MinInt32), Saturate[int32](math.Inf(-1)))

	// The int64/uint64 upper limits are not exact float64 values; the clamp
	// must still hit the true limits.
	assert.Equal(t, int64(math.MaxInt64), Saturate[int64](1e19))
	assert.Equal(t, uint64(math.MaxUint64), Saturate[uint64](2e19))

	// NaN saturates to the destination's lowest value.
	nan := math.NaN()
	assert.Equal(t, int8(-128), Saturate[int8](nan))
	assert.Equal(t, int32(math.MinInt32), Saturate[int32](nan))
	assert.Equal(t, uint8(0), Saturate[uint8](nan))
	assert.Equal(t, uint64(0), Saturate[uint64](nan))
}

func TestSaturateFloatingDestinationPassesThrough(t *testing.T) {
	assert.Equal(t, float32(1e10), Saturate[float32](float64(1e10)))
	assert.Equal(t, float64(math.MaxInt64), Saturate[float64](int64(math.MaxInt64)))
	big := Saturate[float32](int64(math.MaxInt64))
	assert.Equal(t, float32(math.MaxInt64), big)
}

func TestSaturateOneSidedFastPaths(t *testing.T) {
	// The one-sided clamps agree with the general two-sided clamp on every
	// value of the source type.
	for v := 0; v <= math.MaxUint8; v++ {
		x := uint8(v)
		assert.Equal(t, Saturate[int8](x), SaturateUint8ToInt8(x), "uint8 value %d", v)
	}
	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		x := int8(v)
		assert.Equal(t, Saturate[uint8](x), SaturateInt8ToUint8(x), "int8 value %d", v)
	}
}

func TestSaturate64(t *testing.T) {
	assert.Equal(t, 127.0, Saturate64[int8](300.5))
	assert.Equal(t, -128.0, Saturate64[int8](-300.5))
	assert.Equal(t, 3.25, Saturate64[int8](3.25)) // Clamp only, no rounding.
	assert.Equal(t, 0.0, Saturate64[uint16](-1e9))
	assert.Equal(t, 1e300, Saturate64[float32](1e300)) // Floats are unbounded here.
	assert.True(t, math.IsNaN(Saturate64[int8](math.NaN())))
}

func TestRoundAndSaturate(t *testing.T) {
	mode := fpenv.Default()

	// Rounding happens before the clamp, so a value that only exceeds the
	// range after rounding still saturates correctly.
	assert.Equal(t, int8(127), RoundAndSaturate[int8](mode, 127.4))
	assert.Equal(t, int8(127), RoundAndSaturate[int8](mode, 127.6))
	assert.Equal(t, uint8(0), RoundAndSaturate[uint8](mode, -0.6))
	assert.Equal(t, uint8(0), RoundAndSaturate[uint8](mode, -0.4))

	// Nearest-even ties.
	assert.Equal(t, int32(2), RoundAndSaturate[int32](mode, 2.5))
	assert.Equal(t, int32(4), RoundAndSaturate[int32](mode, 3.5))
	assert.Equal(t, int32(-2), RoundAndSaturate[int32](mode, -2.5))

	// Directed modes.
	assert.Equal(t, int8(2), RoundAndSaturate[int8](fpenv.TowardNegative, 2.7))
	assert.Equal(t, int8(3), RoundAndSaturate[int8](fpenv.TowardPositive, 2.2))
	assert.Equal(t, int8(-2), RoundAndSaturate[int8](fpenv.TowardZero, -2.7))
	assert.Equal(t, int8(-3), RoundAndSaturate[int8](fpenv.TowardNegative, -2.7))

	// NaN rounds to the integer indefinite value and saturates to the lowest.
	nan := float32(math.NaN())
	assert.Equal(t, int8(-128), RoundAndSaturate[int8](mode, nan))
	assert.Equal(t, uint8(0), RoundAndSaturate[uint8](mode, nan))
	assert.Equal(t, int32(math.MinInt32), RoundAndSaturate[int32](mode, nan))

	// Round64 narrows to float32 before rounding.
	assert.Equal(t, int8(2), RoundAndSaturate64[int8](mode, 2.4999999999999996))
}
