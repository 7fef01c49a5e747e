package quantize

import (
	"math"

	"github.com/gomlx/quantize/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// Saturate clamps x into the representable range of OutT and narrows.
//
// When OutT is a floating format (including the narrow floats) there is nothing
// to clamp and the call reduces to the plain format conversion. For integer
// destinations the comparisons run in a domain wide enough to order both
// operands' full ranges: int64 for signed accumulators, uint64 for uint64
// accumulators and float64 for floating accumulators. A floating accumulator
// that is NaN saturates to the destination's lowest value, the same result the
// round-then-clamp path produces.
func Saturate[OutT Scalar, AccT PODNumeric](x AccT) OutT {
	return saturateScalar[AccT, OutT](x)
}

// Saturate64 clamps x into the representable range of OutT but keeps the
// double-precision representation, for callers that need to clamp before a
// later narrowing step. Floating destinations are unbounded within their
// format, so the value passes through. NaN propagates.
func Saturate64[OutT Scalar](x float64) float64 {
	lo, hi := floatLimits[OutT]()
	return math.Min(math.Max(x, lo), hi)
}

// SaturateUint8ToInt8 clamps an uint8 into the int8 range. The values are
// already >= 0, so only the upper clamp at 127 can apply. Algebraically the
// same as the general two-sided clamp.
func SaturateUint8ToInt8(x uint8) int8 {
	if x <= math.MaxInt8 {
		return int8(x)
	}
	return math.MaxInt8
}

// SaturateInt8ToUint8 clamps an int8 into the uint8 range. The values are
// already <= 127, so only the lower clamp at 0 can apply.
func SaturateInt8ToUint8(x int8) uint8 {
	if x >= 0 {
		return uint8(x)
	}
	return 0
}

// saturateScalar dispatches on the accumulator type to the clamp running in
// the right comparison domain.
func saturateScalar[InT, OutT Scalar](in InT) OutT {
	switch v := any(in).(type) {
	case int8:
		return saturateInt64[OutT](int64(v))
	case int16:
		return saturateInt64[OutT](int64(v))
	case int32:
		return saturateInt64[OutT](int64(v))
	case int64:
		return saturateInt64[OutT](v)
	case uint8:
		return saturateInt64[OutT](int64(v))
	case uint16:
		return saturateInt64[OutT](int64(v))
	case uint32:
		return saturateInt64[OutT](int64(v))
	case uint64:
		return saturateUint64[OutT](v)
	case float32:
		return saturateFloat64[OutT](float64(v))
	case float64:
		return saturateFloat64[OutT](v)
	case float16.Float16:
		return saturateFloat64[OutT](float64(v.Float32()))
	case bfloat16.BFloat16:
		return saturateFloat64[OutT](float64(v.Float32()))
	}
	var zero OutT
	return zero
}

// saturateInt64 clamps a signed accumulator into OutT's range and narrows.
// Every signed and small unsigned accumulator fits int64 exactly, so a single
// comparison domain covers all those pairs.
func saturateInt64[OutT Scalar](v int64) (out OutT) {
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(min(max(v, math.MinInt8), math.MaxInt8))
	case *int16:
		*p = int16(min(max(v, math.MinInt16), math.MaxInt16))
	case *int32:
		*p = int32(min(max(v, math.MinInt32), math.MaxInt32))
	case *int64:
		*p = v
	case *uint8:
		*p = uint8(min(max(v, 0), math.MaxUint8))
	case *uint16:
		*p = uint16(min(max(v, 0), math.MaxUint16))
	case *uint32:
		*p = uint32(min(max(v, 0), math.MaxUint32))
	case *uint64:
		*p = uint64(max(v, 0))
	case *float32:
		*p = float32(v)
	case *float64:
		*p = float64(v)
	case *float16.Float16:
		*p = float16.Fromfloat32(float32(v))
	case *bfloat16.BFloat16:
		*p = bfloat16.FromFloat32(float32(v))
	}
	return
}

// saturateUint64 is the unsigned-accumulator variant: values are >= 0, only
// the upper clamp can apply.
func saturateUint64[OutT Scalar](v uint64) (out OutT) {
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(min(v, math.MaxInt8))
	case *int16:
		*p = int16(min(v, math.MaxInt16))
	case *int32:
		*p = int32(min(v, math.MaxInt32))
	case *int64:
		*p = int64(min(v, math.MaxInt64))
	case *uint8:
		*p = uint8(min(v, math.MaxUint8))
	case *uint16:
		*p = uint16(min(v, math.MaxUint16))
	case *uint32:
		*p = uint32(min(v, math.MaxUint32))
	case *uint64:
		*p = v
	case *float32:
		*p = float32(v)
	case *float64:
		*p = float64(v)
	case *float16.Float16:
		*p = float16.Fromfloat32(float32(v))
	case *bfloat16.BFloat16:
		*p = bfloat16.FromFloat32(float32(v))
	}
	return
}

// saturateFloat64 clamps a floating accumulator into OutT and narrows. The
// conversion after the clamp truncates, as a C cast would; rounding, when
// wanted, must happen before (see RoundAndSaturate). NaN saturates to the
// destination's lowest value. The int64 and uint64 upper bounds are not exact
// float64 values, so those destinations compare against the next power of two
// and return the bound directly.
func saturateFloat64[OutT Scalar](v float64) (out OutT) {
	switch p := any(&out).(type) {
	case *int8:
		switch {
		case v != v || v < math.MinInt8:
			*p = math.MinInt8
		case v > math.MaxInt8:
			*p = math.MaxInt8
		default:
			*p = int8(v)
		}
	case *int16:
		switch {
		case v != v || v < math.MinInt16:
			*p = math.MinInt16
		case v > math.MaxInt16:
			*p = math.MaxInt16
		default:
			*p = int16(v)
		}
	case *int32:
		switch {
		case v != v || v < math.MinInt32:
			*p = math.MinInt32
		case v > math.MaxInt32:
			*p = math.MaxInt32
		default:
			*p = int32(v)
		}
	case *int64:
		switch {
		case v != v || v < math.MinInt64:
			*p = math.MinInt64
		case v >= 0x1p63:
			*p = math.MaxInt64
		default:
			*p = int64(v)
		}
	case *uint8:
		switch {
		case v != v || v < 0:
			*p = 0
		case v > math.MaxUint8:
			*p = math.MaxUint8
		default:
			*p = uint8(v)
		}
	case *uint16:
		switch {
		case v != v || v < 0:
			*p = 0
		case v > math.MaxUint16:
			*p = math.MaxUint16
		default:
			*p = uint16(v)
		}
	case *uint32:
		switch {
		case v != v || v < 0:
			*p = 0
		case v > math.MaxUint32:
			*p = math.MaxUint32
		default:
			*p = uint32(v)
		}
	case *uint64:
		switch {
		case v != v || v < 0:
			*p = 0
		case v >= 0x1p64:
			*p = math.MaxUint64
		default:
			*p = uint64(v)
		}
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *float16.Float16:
		*p = float16.Fromfloat32(float32(v))
	case *bfloat16.BFloat16:
		*p = bfloat16.FromFloat32(float32(v))
	}
	return
}

// floatLimits returns OutT's representable range as float64 bounds, used by
// the double-precision clamp. Floating destinations report the infinities.
func floatLimits[OutT Scalar]() (lo, hi float64) {
	var out OutT
	switch any(out).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case int64:
		// The 64-bit upper bounds round up to the next power of two in
		// float64; a later Saturate narrows them exactly.
		return math.MinInt64, math.MaxInt64
	case uint8:
		return 0, math.MaxUint8
	case uint16:
		return 0, math.MaxUint16
	case uint32:
		return 0, math.MaxUint32
	case uint64:
		return 0, math.MaxUint64
	}
	return math.Inf(-1), math.Inf(1)
}
