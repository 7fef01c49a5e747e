// Package bfloat16 is a trivial implementation for the bfloat16 type,
// based on https://github.com/x448/float16 and the pending issue in
// https://github.com/x448/float16/issues/22
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 (brain floating point) floating-point format is a computer number format
// occupying 16 bits in computer memory; it represents a wide dynamic range of numeric
// values by using a floating radix point.
// This format is a shortened (16-bit) version of the 32-bit IEEE 754 single-precision
// floating-point format (binary32): same sign and exponent bits, mantissa truncated
// to 7 bits. It keeps float32's dynamic range at reduced precision, which is why the
// quantization kernel treats it as a "narrow float" and not as an integer format.
type BFloat16 uint16

func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// FromFloat32 converts a float32 to a BFloat16, rounding to nearest, ties to even.
func FromFloat32(x float32) BFloat16 {
	u := math.Float32bits(x)
	if u&0x7F800000 == 0x7F800000 && u&0x007FFFFF != 0 {
		// NaN: quiet it and keep the payload bits that survive the truncation.
		return BFloat16(u>>16) | 0x0040
	}
	// Round-to-nearest-even: bias is 0x7FFF, plus one when the surviving
	// mantissa's low bit is set (the tie goes to even).
	u += 0x7FFF + (u >> 16 & 1)
	return BFloat16(u >> 16)
}

// FromFloat64 converts a float64 to a BFloat16.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// FromBits convert an uint16 to a BFloat16.
func FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits convert BFloat16 to an uint16.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// IsNaN reports whether f is a "not-a-number" value.
func (f BFloat16) IsNaN() bool {
	return f&0x7F80 == 0x7F80 && f&0x007F != 0
}

// String implements fmt.Stringer, and prints a float representation of the BFloat16.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'f', -1, 32)
}

// Inf returns a BFloat16 with an infinity value with the specified sign.
// A sign >= 0 returns positive infinity.
// A sign < 0 returns negative infinity.
func Inf(sign int) BFloat16 {
	return FromFloat32(float32(math.Inf(sign)))
}

// SmallestNonzero is the smallest nonzero denormal value for bfloat16 (9.1835e-41).
// It's the bfloat16 equivalent of [math.SmallestNonzeroFloat32] and
// [math.SmallestNonzeroFloat64].
const SmallestNonzero = BFloat16(0x0001)
