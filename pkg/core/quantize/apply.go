package quantize

import (
	"reflect"

	"github.com/gomlx/exceptions"

	"github.com/gomlx/quantize/pkg/core/dtypes"
	"github.com/gomlx/quantize/pkg/core/fpenv"
)

// Flat (type-erased) entry points: callers holding []T buffers behind an any
// pick the kernel by the (input, output) dtype pair at runtime. The per-pair
// kernels themselves are the generic functions instantiated per pair, so the
// inner loops carry no dispatch.

type convertFlatFnType = func(in, out any, mode fpenv.RoundingMode)

type affineFlatFnType = func(in, out any, mode fpenv.RoundingMode, alpha, beta float32)

var (
	convertFlatPairMap = NewDTypePairMap("ConvertFlat")
	affineFlatPairMap  = NewDTypePairMap("AffineFlat")
)

//go:generate go run ../../../internal/cmd/quantize_dispatcher

func init() {
	// The int8 x uint8 one-sided clamps: same results as the generic
	// two-sided kernel, half the comparisons.
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Int8, priorityTyped, applyConvertUint8ToInt8)
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Uint8, priorityTyped, applyConvertInt8ToUint8)
}

// ConvertFlat converts every element of the in slice into the out slice,
// element-wise, with [Convert] semantics. Both arguments must be slices of
// supported scalar types with the same length. It panics (with an exceptions
// throw) on an unsupported slice type or a length mismatch.
func ConvertFlat(mode fpenv.RoundingMode, in, out any) {
	inDType, inLen := flatDTypeOf(in)
	outDType, outLen := flatDTypeOf(out)
	if inLen != outLen {
		exceptions.Panicf("ConvertFlat: length mismatch, len(in)=%d, len(out)=%d", inLen, outLen)
	}
	fn := convertFlatPairMap.Get(inDType, outDType).(convertFlatFnType)
	fn(in, out, mode)
}

// AffineFlat stores alpha*in[i] + beta*out[i] into out[i] for every element,
// with [Affine] semantics (in particular, beta == 0 never reads out). Both
// arguments must be slices of supported scalar types with the same length.
func AffineFlat(mode fpenv.RoundingMode, in, out any, alpha, beta float32) {
	inDType, inLen := flatDTypeOf(in)
	outDType, outLen := flatDTypeOf(out)
	if inLen != outLen {
		exceptions.Panicf("AffineFlat: length mismatch, len(in)=%d, len(out)=%d", inLen, outLen)
	}
	fn := affineFlatPairMap.Get(inDType, outDType).(affineFlatFnType)
	fn(in, out, mode, alpha, beta)
}

// flatDTypeOf resolves a flat buffer (a slice of a supported scalar type) to
// its dtype and length.
func flatDTypeOf(flat any) (dtypes.DType, int) {
	v := reflect.ValueOf(flat)
	if v.Kind() != reflect.Slice {
		exceptions.Panicf("flat buffer must be a slice, got %T", flat)
	}
	dtype := dtypes.FromGoType(v.Type().Elem())
	if dtype == dtypes.InvalidDType {
		exceptions.Panicf("flat buffer type %T is not a supported scalar slice", flat)
	}
	return dtype, v.Len()
}

func applyConvertGeneric[InT, OutT Scalar](in, out any, mode fpenv.RoundingMode) {
	inFlat := in.([]InT)
	outFlat := out.([]OutT)
	for idx, value := range inFlat {
		outFlat[idx] = Convert[InT, OutT](mode, value)
	}
}

func applyAffineGeneric[InT, OutT Scalar](in, out any, mode fpenv.RoundingMode, alpha, beta float32) {
	inFlat := in.([]InT)
	outFlat := out.([]OutT)
	if alpha == 1 && beta == 0 {
		for idx, value := range inFlat {
			outFlat[idx] = Convert[InT, OutT](mode, value)
		}
		return
	}
	if beta == 0 {
		for idx, value := range inFlat {
			outFlat[idx] = Scale[InT, OutT](mode, value, alpha)
		}
		return
	}
	for idx, value := range inFlat {
		outFlat[idx] = Affine(mode, value, outFlat[idx], alpha, beta)
	}
}

func applyConvertUint8ToInt8(in, out any, mode fpenv.RoundingMode) {
	_ = mode // Integer inputs never round.
	inFlat := in.([]uint8)
	outFlat := out.([]int8)
	for idx, value := range inFlat {
		outFlat[idx] = SaturateUint8ToInt8(value)
	}
}

func applyConvertInt8ToUint8(in, out any, mode fpenv.RoundingMode) {
	_ = mode
	inFlat := in.([]int8)
	outFlat := out.([]uint8)
	for idx, value := range inFlat {
		outFlat[idx] = SaturateInt8ToUint8(value)
	}
}
