// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fpenv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound_NearestEven(t *testing.T) {
	mode := NearestEven
	assert.Equal(t, int32(2), mode.Round(2.5), "tie goes to even")
	assert.Equal(t, int32(4), mode.Round(3.5), "tie goes to even")
	assert.Equal(t, int32(-2), mode.Round(-2.5))
	assert.Equal(t, int32(0), mode.Round(0.5))
	assert.Equal(t, int32(0), mode.Round(-0.5))
	assert.Equal(t, int32(3), mode.Round(2.7))
	assert.Equal(t, int32(-3), mode.Round(-2.7))
	assert.Equal(t, int32(37), mode.Round(37.0))
}

func TestRound_DirectedModes(t *testing.T) {
	assert.Equal(t, int32(2), TowardNegative.Round(2.7))
	assert.Equal(t, int32(-3), TowardNegative.Round(-2.5))
	assert.Equal(t, int32(3), TowardPositive.Round(2.1))
	assert.Equal(t, int32(-2), TowardPositive.Round(-2.9))
	assert.Equal(t, int32(2), TowardZero.Round(2.9))
	assert.Equal(t, int32(-2), TowardZero.Round(-2.9))
}

func TestRound_Indefinite(t *testing.T) {
	// NaN and out-of-range values collapse to the cvtss2si "integer indefinite".
	for _, mode := range RoundingModeValues() {
		assert.Equal(t, int32(math.MinInt32), mode.Round(float32(math.NaN())))
		assert.Equal(t, int32(math.MinInt32), mode.Round(1e10))
		assert.Equal(t, int32(math.MinInt32), mode.Round(-1e10))
		assert.Equal(t, int32(math.MinInt32), mode.Round(float32(math.Inf(1))))
	}
	// The extremes that do fit are preserved.
	assert.Equal(t, int32(math.MinInt32), NearestEven.Round(float32(math.MinInt32)))
}

func TestRound64(t *testing.T) {
	assert.Equal(t, int32(4), NearestEven.Round64(3.5))
	assert.Equal(t, int32(-2), TowardZero.Round64(-2.9))
	assert.Equal(t, int32(math.MinInt32), NearestEven.Round64(math.NaN()))
	// Round64 narrows to float32 first: a float64 just below a tie becomes the
	// tie after narrowing and then rounds to even.
	assert.Equal(t, int32(2), NearestEven.Round64(2.4999999999999996))
}

func TestRoundingModeStrings(t *testing.T) {
	require.Equal(t, "NearestEven", NearestEven.String())
	mode, err := RoundingModeString("towardzero")
	require.NoError(t, err)
	assert.Equal(t, TowardZero, mode)
	assert.Equal(t, NearestEven, Default())
	assert.True(t, TowardPositive.IsARoundingMode())
	assert.False(t, RoundingMode(200).IsARoundingMode())
}
