package dtypes

// The enum values are kept 1:1 with the PJRT C API (PJRT_Buffer_Type_*) so scalars
// quantized here can be stored into buffers shared with PJRT-backed runtimes without
// any renumbering. Only the types the quantization kernel supports are defined.

// DType is an enum that represents the data type of a scalar or of a flat buffer
// of scalars.
//
// The names follow the XLA C/C++ constants, so they are not Go idiomatic.
// The package provides the usual short aliases (S8, U8, F16, BF16, ...).
type DType int32

//go:generate go tool enumer -type=DType -output=dtype_enumer.go

const (
	// InvalidDType is an invalid type that serves as the default.
	InvalidDType DType = 0

	// Bool is a two-state predicate. It is not a valid quantization input or output,
	// but it is part of the enum so buffers of predicates can be described.
	Bool DType = 1

	// Int8 is a signed integral value of fixed 8-bit width.
	Int8 DType = 2

	// Int16 is a signed integral value of fixed 16-bit width.
	Int16 DType = 3

	// Int32 is a signed integral value of fixed 32-bit width.
	Int32 DType = 4

	// Int64 is a signed integral value of fixed 64-bit width.
	Int64 DType = 5

	// Uint8 is an unsigned integral value of fixed 8-bit width.
	Uint8 DType = 6

	// Uint16 is an unsigned integral value of fixed 16-bit width.
	Uint16 DType = 7

	// Uint32 is an unsigned integral value of fixed 32-bit width.
	Uint32 DType = 8

	// Uint64 is an unsigned integral value of fixed 64-bit width.
	Uint64 DType = 9

	// Float16 is the IEEE 754 half-precision (binary16) floating-point format:
	// 1 sign bit, 5 exponent bits and 10 mantissa bits.
	Float16 DType = 10

	// Float32 is the IEEE 754 single-precision (binary32) floating-point format.
	Float32 DType = 11

	// Float64 is the IEEE 754 double-precision (binary64) floating-point format.
	Float64 DType = 12

	// BFloat16 is the truncated 16-bit "brain" floating-point format: 1 sign bit,
	// 8 exponent bits (same dynamic range as Float32) and 7 mantissa bits.
	BFloat16 DType = 13
)

// MaxDTypes bounds the enum values above, so dispatch tables can be flat arrays
// indexed by DType.
const MaxDTypes = 16

// Aliases from the PJRT C API.
const (
	// INVALID (or PJRT_Buffer_Type_INVALID) is the C enum name for InvalidDType.
	INVALID = InvalidDType

	// PRED (or PJRT_Buffer_Type_PRED) is the C enum name for Bool.
	PRED = Bool

	// S8 (or PJRT_Buffer_Type_S8) is the C enum name for Int8.
	S8 = Int8

	// S16 (or PJRT_Buffer_Type_S16) is the C enum name for Int16.
	S16 = Int16

	// S32 (or PJRT_Buffer_Type_S32) is the C enum name for Int32.
	S32 = Int32

	// S64 (or PJRT_Buffer_Type_S64) is the C enum name for Int64.
	S64 = Int64

	// U8 (or PJRT_Buffer_Type_U8) is the C enum name for Uint8.
	U8 = Uint8

	// U16 (or PJRT_Buffer_Type_U16) is the C enum name for Uint16.
	U16 = Uint16

	// U32 (or PJRT_Buffer_Type_U32) is the C enum name for Uint32.
	U32 = Uint32

	// U64 (or PJRT_Buffer_Type_U64) is the C enum name for Uint64.
	U64 = Uint64

	// F16 (or PJRT_Buffer_Type_F16) is the C enum name for Float16.
	F16 = Float16

	// F32 (or PJRT_Buffer_Type_F32) is the C enum name for Float32.
	F32 = Float32

	// F64 (or PJRT_Buffer_Type_F64) is the C enum name for Float64.
	F64 = Float64

	// BF16 (or PJRT_Buffer_Type_BF16) is the C enum name for BFloat16.
	BF16 = BFloat16
)

// MapOfNames to their dtypes. It includes the aliases to the various dtypes.
// It is also later initialized to include the lower-case version of the names.
var MapOfNames = map[string]DType{
	"InvalidDType": InvalidDType,
	"INVALID":      InvalidDType,
	"Bool":         Bool,
	"PRED":         Bool,
	"Int8":         Int8,
	"S8":           Int8,
	"Int16":        Int16,
	"S16":          Int16,
	"Int32":        Int32,
	"S32":          Int32,
	"Int64":        Int64,
	"S64":          Int64,
	"Uint8":        Uint8,
	"U8":           Uint8,
	"Uint16":       Uint16,
	"U16":          Uint16,
	"Uint32":       Uint32,
	"U32":          Uint32,
	"Uint64":       Uint64,
	"U64":          Uint64,
	"Float16":      Float16,
	"F16":          Float16,
	"Float32":      Float32,
	"F32":          Float32,
	"Float64":      Float64,
	"F64":          Float64,
	"BFloat16":     BFloat16,
	"BF16":         BFloat16,
}
