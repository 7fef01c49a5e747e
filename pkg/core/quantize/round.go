package quantize

import (
	"github.com/gomlx/quantize/pkg/core/fpenv"
)

// RoundAndSaturate rounds f to an integer under the given rounding mode, then
// saturates the result into OutT. The rounding happens in a wide (int32)
// intermediate so it cannot itself overflow the destination; the clamp then
// always sees a finite integer. NaN and values beyond the int32 range round to
// the indefinite value (see fpenv.RoundingMode.Round) and therefore saturate
// to the destination's lowest value.
func RoundAndSaturate[OutT Scalar](mode fpenv.RoundingMode, f float32) OutT {
	return saturateInt64[OutT](int64(mode.Round(f)))
}

// RoundAndSaturate64 is the double-precision overload of RoundAndSaturate.
// The value narrows to float32 before rounding, see fpenv.RoundingMode.Round64.
func RoundAndSaturate64[OutT Scalar](mode fpenv.RoundingMode, v float64) OutT {
	return saturateInt64[OutT](int64(mode.Round64(v)))
}
