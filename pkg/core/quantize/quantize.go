// Package quantize implements the scalar conversion kernel that stores an
// accumulated numeric result into a lower-precision format, optionally
// combined with the pre-existing destination value through an affine blend
// (alpha*in + beta*out).
//
// The four entry points cover the shapes the affine form degenerates into:
//
//   - [Convert]: alpha == 1, beta == 0 — plain format conversion.
//   - [Scale]: beta == 0 — scaled conversion.
//   - [Blend]: alpha == 1 — accumulate into the existing output.
//   - [Affine]: the general form.
//
// All of them are generic on the (input, output) type pair and pick the
// cheapest correct path for the pair at instantiation time: a bare cast when
// the input type is a representational subset of the output type, a clamp
// when only the range can overflow, and round-then-clamp only when a
// fractional value meets an integer destination. Floating destinations —
// float32, float64 and the 16-bit narrow floats (bfloat16, IEEE half) — are
// never rounded to integer and never clamped.
//
// There are no error results: magnitude overflow saturates and fractional
// values round under the caller-supplied ambient rounding mode (see
// [github.com/gomlx/quantize/pkg/core/fpenv]). Everything is stateless and
// reentrant; concurrent use is safe as long as nothing concurrently changes
// the process's floating-point control state the mode argument is meant to
// mirror.
//
// Callers that hold type-erased flat buffers instead of typed scalars can use
// [ConvertFlat] and [AffineFlat], which dispatch on the (input, output) dtype
// pair at runtime.
package quantize

import (
	"github.com/gomlx/quantize/pkg/core/dtypes"
	"github.com/gomlx/quantize/pkg/core/fpenv"
)

// Convert stores in into the OutT format with unit scale and no blending
// (alpha == 1, beta == 0). Per type pair it does the minimum correct work:
//
//   - floating destinations take a plain format conversion;
//   - an integer input whose type is a representational subset of OutT takes
//     a bare cast, no clamp (provably a no-op) and no rounding;
//   - any other integer input is saturated — integers never need rounding;
//   - a floating input bound for an integer destination is rounded under mode
//     and then saturated.
//
// The paths agree on every value they share; the dispatch only removes work.
func Convert[InT, OutT Scalar](mode fpenv.RoundingMode, in InT) OutT {
	inDType := dtypes.FromGenericsType[InT]()
	outDType := dtypes.FromGenericsType[OutT]()
	switch {
	case outDType.IsFloat():
		return convertScalar[InT, OutT](in)
	case inDType.IsSubsetOf(outDType):
		return convertScalar[InT, OutT](in)
	case inDType.IsInt():
		return saturateScalar[InT, OutT](in)
	default:
		return RoundAndSaturate[OutT](mode, toFloat32(in))
	}
}

// Scale quantizes alpha*in into OutT (beta == 0). The product is computed in
// float32, or in float64 when either side is double precision, and narrows
// exactly once: at the final store for floating destinations, at the round for
// integer ones.
func Scale[InT, OutT Scalar](mode fpenv.RoundingMode, in InT, alpha float32) OutT {
	inDType := dtypes.FromGenericsType[InT]()
	outDType := dtypes.FromGenericsType[OutT]()
	switch {
	case inDType == dtypes.Float64 || outDType == dtypes.Float64:
		acc := float64(alpha) * toFloat64(in)
		if outDType.IsFloat() {
			return convertScalar[float64, OutT](acc)
		}
		return RoundAndSaturate64[OutT](mode, acc)
	case outDType.IsFloat():
		return convertScalar[float32, OutT](alpha * toFloat32(in))
	default:
		return RoundAndSaturate[OutT](mode, alpha*toFloat32(in))
	}
}

// Blend quantizes in + beta*out into OutT (alpha == 1), where out is the
// pre-existing destination value. The accumulator precision follows the same
// rules as [Scale].
func Blend[InT, OutT Scalar](mode fpenv.RoundingMode, in InT, out OutT, beta float32) OutT {
	inDType := dtypes.FromGenericsType[InT]()
	outDType := dtypes.FromGenericsType[OutT]()
	switch {
	case inDType == dtypes.Float64 || outDType == dtypes.Float64:
		acc := toFloat64(in) + float64(beta)*toFloat64(out)
		if outDType.IsFloat() {
			return convertScalar[float64, OutT](acc)
		}
		return RoundAndSaturate64[OutT](mode, acc)
	case outDType.IsFloat():
		return convertScalar[float32, OutT](toFloat32(in) + beta*toFloat32(out))
	default:
		return RoundAndSaturate[OutT](mode, toFloat32(in)+beta*toFloat32(out))
	}
}

// Affine quantizes alpha*in + beta*out into OutT, the general form. The
// accumulator precision follows the same rules as [Scale].
//
// When beta is exactly zero the beta*out term is skipped rather than computed,
// so a zero-blend request is immune to garbage — including NaN or Inf — in a
// stale destination buffer. With a nonzero beta, NaN propagates by the
// ordinary floating-point rules.
func Affine[InT, OutT Scalar](mode fpenv.RoundingMode, in InT, out OutT, alpha, beta float32) OutT {
	inDType := dtypes.FromGenericsType[InT]()
	outDType := dtypes.FromGenericsType[OutT]()
	switch {
	case inDType == dtypes.Float64 || outDType == dtypes.Float64:
		acc := float64(alpha) * toFloat64(in)
		if beta != 0 {
			acc += float64(beta) * toFloat64(out)
		}
		if outDType.IsFloat() {
			return convertScalar[float64, OutT](acc)
		}
		return RoundAndSaturate64[OutT](mode, acc)
	case outDType.IsFloat():
		acc := alpha * toFloat32(in)
		if beta != 0 {
			acc += beta * toFloat32(out)
		}
		return convertScalar[float32, OutT](acc)
	default:
		acc := alpha * toFloat32(in)
		if beta != 0 {
			acc += beta * toFloat32(out)
		}
		return RoundAndSaturate[OutT](mode, acc)
	}
}
