package quantize

import (
	"github.com/gomlx/quantize/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// PODNumeric are the native Go ("plain-old-data") numeric types the kernel
// accepts. BFloat16 and Float16 are not included because they are not native
// number types; see [Scalar].
type PODNumeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// PODInteger are the native Go fixed-width integer types.
type PODInteger interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// PODFloat are the native Go floating-point types.
type PODFloat interface {
	float32 | float64
}

// Scalar is every type a quantization can read from or write to: the POD
// numeric types plus the two 16-bit narrow-float formats.
type Scalar interface {
	PODNumeric | float16.Float16 | bfloat16.BFloat16
}
