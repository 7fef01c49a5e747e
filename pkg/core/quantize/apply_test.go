// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package quantize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/quantize/pkg/core/fpenv"
)

func TestConvertFlat(t *testing.T) {
	mode := fpenv.Default()

	in := []int32{0, 1, -1, 300, -300}
	out := make([]float32, len(in))
	ConvertFlat(mode, in, out)
	assert.Equal(t, []float32{0, 1, -1, 300, -300}, out)

	fIn := []float32{3.7, -3.7, 300, -300, 2.5}
	i8Out := make([]int8, len(fIn))
	ConvertFlat(mode, fIn, i8Out)
	assert.Equal(t, []int8{4, -4, 127, -128, 2}, i8Out)
}

func TestConvertFlatTypedFastPath(t *testing.T) {
	// The uint8 x int8 pairs are served by the hand-written one-sided kernels;
	// they must agree with the scalar API on every value.
	mode := fpenv.Default()

	u8In := make([]uint8, 256)
	for i := range u8In {
		u8In[i] = uint8(i)
	}
	i8Out := make([]int8, len(u8In))
	ConvertFlat(mode, u8In, i8Out)
	for i, v := range u8In {
		require.Equal(t, Convert[uint8, int8](mode, v), i8Out[i], "uint8 value %d", v)
	}

	i8In := make([]int8, 256)
	for i := range i8In {
		i8In[i] = int8(i - 128)
	}
	u8Out := make([]uint8, len(i8In))
	ConvertFlat(mode, i8In, u8Out)
	for i, v := range i8In {
		require.Equal(t, Convert[int8, uint8](mode, v), u8Out[i], "int8 value %d", v)
	}
}

func TestAffineFlat(t *testing.T) {
	mode := fpenv.Default()

	// General affine: alpha*in + beta*out.
	in := []float32{1, 2, 3}
	out := []int8{10, 20, 30}
	AffineFlat(mode, in, out, 2, 0.5)
	assert.Equal(t, []int8{7, 14, 21}, out)

	// alpha == 1 && beta == 0 degenerates to plain conversion.
	out2 := []int8{99, 99, 99}
	AffineFlat(mode, in, out2, 1, 0)
	assert.Equal(t, []int8{1, 2, 3}, out2)

	// beta == 0 never reads the output: garbage (NaN included) is overwritten.
	nan := float32(math.NaN())
	fOut := []float32{nan, nan, nan}
	AffineFlat(mode, in, fOut, 10, 0)
	assert.Equal(t, []float32{10, 20, 30}, fOut)
}

func TestFlatArgumentChecks(t *testing.T) {
	mode := fpenv.Default()

	// Length mismatch.
	assert.Panics(t, func() {
		ConvertFlat(mode, []int32{1, 2, 3}, make([]float32, 2))
	})
	// Bool slices are valid slices but no kernel is registered for the pair.
	assert.Panics(t, func() {
		ConvertFlat(mode, []bool{true}, make([]float32, 1))
	})
	// Not a slice at all.
	assert.Panics(t, func() {
		AffineFlat(mode, int32(7), make([]float32, 1), 1, 0)
	})
}
