package quantize

import (
	"github.com/gomlx/quantize/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// Scalar conversion helpers shared by the functor family. They are written as
// type switches over the generic parameter: each instantiation resolves to a
// single branch at compile time, so none of this dispatch survives into the
// per-element inner loops.

// toFloat32 converts any supported scalar to float32, the kernel's common
// accumulator format.
func toFloat32[T Scalar](v T) float32 {
	switch v := any(v).(type) {
	case float32:
		return v
	case float64:
		return float32(v)
	case float16.Float16:
		return v.Float32()
	case bfloat16.BFloat16:
		return v.Float32()
	case int8:
		return float32(v)
	case int16:
		return float32(v)
	case int32:
		return float32(v)
	case int64:
		return float32(v)
	case uint8:
		return float32(v)
	case uint16:
		return float32(v)
	case uint32:
		return float32(v)
	case uint64:
		return float32(v)
	}
	return 0
}

// toFloat64 is the double-precision variant of toFloat32.
func toFloat64[T Scalar](v T) float64 {
	switch v := any(v).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case float16.Float16:
		return float64(v.Float32())
	case bfloat16.BFloat16:
		return float64(v.Float32())
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// toInt64 converts an integer scalar to int64. Uint64 wraps through two's
// complement, which is exact for every pair where the conversion is used
// without a clamp (the subset pairs). Floating inputs truncate and are only
// meaningful when the value fits.
func toInt64[T Scalar](v T) int64 {
	switch v := any(v).(type) {
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	case float16.Float16:
		return int64(v.Float32())
	case bfloat16.BFloat16:
		return int64(v.Float32())
	}
	return 0
}

// convertScalar is the bare format conversion: no rounding, no clamping.
// For integer destinations it is only correct when InT is a representational
// subset of OutT; floating destinations (where overflow is out of this
// kernel's operating range) accept any input.
func convertScalar[InT, OutT Scalar](in InT) (out OutT) {
	switch p := any(&out).(type) {
	case *float32:
		*p = toFloat32(in)
	case *float64:
		*p = toFloat64(in)
	case *float16.Float16:
		*p = float16.Fromfloat32(toFloat32(in))
	case *bfloat16.BFloat16:
		*p = bfloat16.FromFloat32(toFloat32(in))
	case *int8:
		*p = int8(toInt64(in))
	case *int16:
		*p = int16(toInt64(in))
	case *int32:
		*p = int32(toInt64(in))
	case *int64:
		*p = toInt64(in)
	case *uint8:
		*p = uint8(toInt64(in))
	case *uint16:
		*p = uint16(toInt64(in))
	case *uint32:
		*p = uint32(toInt64(in))
	case *uint64:
		*p = uint64(toInt64(in))
	}
	return
}
