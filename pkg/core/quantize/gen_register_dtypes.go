/***** File generated by ./internal/cmd/quantize_dispatcher. Don't edit it directly. *****/

package quantize

import (
	"github.com/gomlx/quantize/pkg/core/dtypes"
	"github.com/gomlx/quantize/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

func init() {

	// DTypePairMap: convertFlatPairMap
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Int8, priorityGeneric, applyConvertGeneric[int8, int8])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Int16, priorityGeneric, applyConvertGeneric[int8, int16])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Int32, priorityGeneric, applyConvertGeneric[int8, int32])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Int64, priorityGeneric, applyConvertGeneric[int8, int64])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Uint8, priorityGeneric, applyConvertGeneric[int8, uint8])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Uint16, priorityGeneric, applyConvertGeneric[int8, uint16])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Uint32, priorityGeneric, applyConvertGeneric[int8, uint32])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Uint64, priorityGeneric, applyConvertGeneric[int8, uint64])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Float32, priorityGeneric, applyConvertGeneric[int8, float32])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Float64, priorityGeneric, applyConvertGeneric[int8, float64])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[int8, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Int8, dtypes.Float16, priorityGeneric, applyConvertGeneric[int8, float16.Float16])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Int8, priorityGeneric, applyConvertGeneric[int16, int8])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Int16, priorityGeneric, applyConvertGeneric[int16, int16])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Int32, priorityGeneric, applyConvertGeneric[int16, int32])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Int64, priorityGeneric, applyConvertGeneric[int16, int64])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Uint8, priorityGeneric, applyConvertGeneric[int16, uint8])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Uint16, priorityGeneric, applyConvertGeneric[int16, uint16])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Uint32, priorityGeneric, applyConvertGeneric[int16, uint32])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Uint64, priorityGeneric, applyConvertGeneric[int16, uint64])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Float32, priorityGeneric, applyConvertGeneric[int16, float32])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Float64, priorityGeneric, applyConvertGeneric[int16, float64])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[int16, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Int16, dtypes.Float16, priorityGeneric, applyConvertGeneric[int16, float16.Float16])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Int8, priorityGeneric, applyConvertGeneric[int32, int8])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Int16, priorityGeneric, applyConvertGeneric[int32, int16])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Int32, priorityGeneric, applyConvertGeneric[int32, int32])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Int64, priorityGeneric, applyConvertGeneric[int32, int64])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Uint8, priorityGeneric, applyConvertGeneric[int32, uint8])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Uint16, priorityGeneric, applyConvertGeneric[int32, uint16])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Uint32, priorityGeneric, applyConvertGeneric[int32, uint32])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Uint64, priorityGeneric, applyConvertGeneric[int32, uint64])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Float32, priorityGeneric, applyConvertGeneric[int32, float32])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Float64, priorityGeneric, applyConvertGeneric[int32, float64])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[int32, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Int32, dtypes.Float16, priorityGeneric, applyConvertGeneric[int32, float16.Float16])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Int8, priorityGeneric, applyConvertGeneric[int64, int8])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Int16, priorityGeneric, applyConvertGeneric[int64, int16])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Int32, priorityGeneric, applyConvertGeneric[int64, int32])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Int64, priorityGeneric, applyConvertGeneric[int64, int64])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Uint8, priorityGeneric, applyConvertGeneric[int64, uint8])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Uint16, priorityGeneric, applyConvertGeneric[int64, uint16])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Uint32, priorityGeneric, applyConvertGeneric[int64, uint32])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Uint64, priorityGeneric, applyConvertGeneric[int64, uint64])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Float32, priorityGeneric, applyConvertGeneric[int64, float32])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Float64, priorityGeneric, applyConvertGeneric[int64, float64])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[int64, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Int64, dtypes.Float16, priorityGeneric, applyConvertGeneric[int64, float16.Float16])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Int8, priorityGeneric, applyConvertGeneric[uint8, int8])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Int16, priorityGeneric, applyConvertGeneric[uint8, int16])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Int32, priorityGeneric, applyConvertGeneric[uint8, int32])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Int64, priorityGeneric, applyConvertGeneric[uint8, int64])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Uint8, priorityGeneric, applyConvertGeneric[uint8, uint8])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Uint16, priorityGeneric, applyConvertGeneric[uint8, uint16])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Uint32, priorityGeneric, applyConvertGeneric[uint8, uint32])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Uint64, priorityGeneric, applyConvertGeneric[uint8, uint64])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Float32, priorityGeneric, applyConvertGeneric[uint8, float32])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Float64, priorityGeneric, applyConvertGeneric[uint8, float64])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[uint8, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Uint8, dtypes.Float16, priorityGeneric, applyConvertGeneric[uint8, float16.Float16])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Int8, priorityGeneric, applyConvertGeneric[uint16, int8])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Int16, priorityGeneric, applyConvertGeneric[uint16, int16])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Int32, priorityGeneric, applyConvertGeneric[uint16, int32])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Int64, priorityGeneric, applyConvertGeneric[uint16, int64])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Uint8, priorityGeneric, applyConvertGeneric[uint16, uint8])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Uint16, priorityGeneric, applyConvertGeneric[uint16, uint16])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Uint32, priorityGeneric, applyConvertGeneric[uint16, uint32])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Uint64, priorityGeneric, applyConvertGeneric[uint16, uint64])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Float32, priorityGeneric, applyConvertGeneric[uint16, float32])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Float64, priorityGeneric, applyConvertGeneric[uint16, float64])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[uint16, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Uint16, dtypes.Float16, priorityGeneric, applyConvertGeneric[uint16, float16.Float16])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Int8, priorityGeneric, applyConvertGeneric[uint32, int8])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Int16, priorityGeneric, applyConvertGeneric[uint32, int16])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Int32, priorityGeneric, applyConvertGeneric[uint32, int32])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Int64, priorityGeneric, applyConvertGeneric[uint32, int64])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Uint8, priorityGeneric, applyConvertGeneric[uint32, uint8])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Uint16, priorityGeneric, applyConvertGeneric[uint32, uint16])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Uint32, priorityGeneric, applyConvertGeneric[uint32, uint32])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Uint64, priorityGeneric, applyConvertGeneric[uint32, uint64])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Float32, priorityGeneric, applyConvertGeneric[uint32, float32])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Float64, priorityGeneric, applyConvertGeneric[uint32, float64])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[uint32, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Uint32, dtypes.Float16, priorityGeneric, applyConvertGeneric[uint32, float16.Float16])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Int8, priorityGeneric, applyConvertGeneric[uint64, int8])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Int16, priorityGeneric, applyConvertGeneric[uint64, int16])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Int32, priorityGeneric, applyConvertGeneric[uint64, int32])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Int64, priorityGeneric, applyConvertGeneric[uint64, int64])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Uint8, priorityGeneric, applyConvertGeneric[uint64, uint8])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Uint16, priorityGeneric, applyConvertGeneric[uint64, uint16])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Uint32, priorityGeneric, applyConvertGeneric[uint64, uint32])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Uint64, priorityGeneric, applyConvertGeneric[uint64, uint64])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Float32, priorityGeneric, applyConvertGeneric[uint64, float32])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Float64, priorityGeneric, applyConvertGeneric[uint64, float64])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[uint64, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Uint64, dtypes.Float16, priorityGeneric, applyConvertGeneric[uint64, float16.Float16])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Int8, priorityGeneric, applyConvertGeneric[float32, int8])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Int16, priorityGeneric, applyConvertGeneric[float32, int16])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Int32, priorityGeneric, applyConvertGeneric[float32, int32])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Int64, priorityGeneric, applyConvertGeneric[float32, int64])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Uint8, priorityGeneric, applyConvertGeneric[float32, uint8])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Uint16, priorityGeneric, applyConvertGeneric[float32, uint16])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Uint32, priorityGeneric, applyConvertGeneric[float32, uint32])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Uint64, priorityGeneric, applyConvertGeneric[float32, uint64])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Float32, priorityGeneric, applyConvertGeneric[float32, float32])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Float64, priorityGeneric, applyConvertGeneric[float32, float64])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[float32, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Float32, dtypes.Float16, priorityGeneric, applyConvertGeneric[float32, float16.Float16])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Int8, priorityGeneric, applyConvertGeneric[float64, int8])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Int16, priorityGeneric, applyConvertGeneric[float64, int16])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Int32, priorityGeneric, applyConvertGeneric[float64, int32])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Int64, priorityGeneric, applyConvertGeneric[float64, int64])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Uint8, priorityGeneric, applyConvertGeneric[float64, uint8])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Uint16, priorityGeneric, applyConvertGeneric[float64, uint16])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Uint32, priorityGeneric, applyConvertGeneric[float64, uint32])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Uint64, priorityGeneric, applyConvertGeneric[float64, uint64])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Float32, priorityGeneric, applyConvertGeneric[float64, float32])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Float64, priorityGeneric, applyConvertGeneric[float64, float64])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[float64, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Float64, dtypes.Float16, priorityGeneric, applyConvertGeneric[float64, float16.Float16])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Int8, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, int8])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Int16, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, int16])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Int32, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, int32])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Int64, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, int64])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Uint8, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, uint8])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Uint16, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, uint16])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Uint32, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, uint32])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Uint64, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, uint64])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Float32, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, float32])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Float64, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, float64])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.BFloat16, dtypes.Float16, priorityGeneric, applyConvertGeneric[bfloat16.BFloat16, float16.Float16])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Int8, priorityGeneric, applyConvertGeneric[float16.Float16, int8])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Int16, priorityGeneric, applyConvertGeneric[float16.Float16, int16])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Int32, priorityGeneric, applyConvertGeneric[float16.Float16, int32])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Int64, priorityGeneric, applyConvertGeneric[float16.Float16, int64])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Uint8, priorityGeneric, applyConvertGeneric[float16.Float16, uint8])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Uint16, priorityGeneric, applyConvertGeneric[float16.Float16, uint16])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Uint32, priorityGeneric, applyConvertGeneric[float16.Float16, uint32])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Uint64, priorityGeneric, applyConvertGeneric[float16.Float16, uint64])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Float32, priorityGeneric, applyConvertGeneric[float16.Float16, float32])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Float64, priorityGeneric, applyConvertGeneric[float16.Float16, float64])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.BFloat16, priorityGeneric, applyConvertGeneric[float16.Float16, bfloat16.BFloat16])
	convertFlatPairMap.Register(dtypes.Float16, dtypes.Float16, priorityGeneric, applyConvertGeneric[float16.Float16, float16.Float16])

	// DTypePairMap: affineFlatPairMap
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Int8, priorityGeneric, applyAffineGeneric[int8, int8])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Int16, priorityGeneric, applyAffineGeneric[int8, int16])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Int32, priorityGeneric, applyAffineGeneric[int8, int32])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Int64, priorityGeneric, applyAffineGeneric[int8, int64])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Uint8, priorityGeneric, applyAffineGeneric[int8, uint8])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Uint16, priorityGeneric, applyAffineGeneric[int8, uint16])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Uint32, priorityGeneric, applyAffineGeneric[int8, uint32])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Uint64, priorityGeneric, applyAffineGeneric[int8, uint64])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Float32, priorityGeneric, applyAffineGeneric[int8, float32])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Float64, priorityGeneric, applyAffineGeneric[int8, float64])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[int8, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Int8, dtypes.Float16, priorityGeneric, applyAffineGeneric[int8, float16.Float16])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Int8, priorityGeneric, applyAffineGeneric[int16, int8])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Int16, priorityGeneric, applyAffineGeneric[int16, int16])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Int32, priorityGeneric, applyAffineGeneric[int16, int32])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Int64, priorityGeneric, applyAffineGeneric[int16, int64])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Uint8, priorityGeneric, applyAffineGeneric[int16, uint8])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Uint16, priorityGeneric, applyAffineGeneric[int16, uint16])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Uint32, priorityGeneric, applyAffineGeneric[int16, uint32])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Uint64, priorityGeneric, applyAffineGeneric[int16, uint64])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Float32, priorityGeneric, applyAffineGeneric[int16, float32])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Float64, priorityGeneric, applyAffineGeneric[int16, float64])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[int16, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Int16, dtypes.Float16, priorityGeneric, applyAffineGeneric[int16, float16.Float16])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Int8, priorityGeneric, applyAffineGeneric[int32, int8])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Int16, priorityGeneric, applyAffineGeneric[int32, int16])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Int32, priorityGeneric, applyAffineGeneric[int32, int32])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Int64, priorityGeneric, applyAffineGeneric[int32, int64])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Uint8, priorityGeneric, applyAffineGeneric[int32, uint8])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Uint16, priorityGeneric, applyAffineGeneric[int32, uint16])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Uint32, priorityGeneric, applyAffineGeneric[int32, uint32])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Uint64, priorityGeneric, applyAffineGeneric[int32, uint64])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Float32, priorityGeneric, applyAffineGeneric[int32, float32])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Float64, priorityGeneric, applyAffineGeneric[int32, float64])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[int32, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Int32, dtypes.Float16, priorityGeneric, applyAffineGeneric[int32, float16.Float16])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Int8, priorityGeneric, applyAffineGeneric[int64, int8])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Int16, priorityGeneric, applyAffineGeneric[int64, int16])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Int32, priorityGeneric, applyAffineGeneric[int64, int32])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Int64, priorityGeneric, applyAffineGeneric[int64, int64])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Uint8, priorityGeneric, applyAffineGeneric[int64, uint8])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Uint16, priorityGeneric, applyAffineGeneric[int64, uint16])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Uint32, priorityGeneric, applyAffineGeneric[int64, uint32])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Uint64, priorityGeneric, applyAffineGeneric[int64, uint64])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Float32, priorityGeneric, applyAffineGeneric[int64, float32])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Float64, priorityGeneric, applyAffineGeneric[int64, float64])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[int64, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Int64, dtypes.Float16, priorityGeneric, applyAffineGeneric[int64, float16.Float16])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Int8, priorityGeneric, applyAffineGeneric[uint8, int8])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Int16, priorityGeneric, applyAffineGeneric[uint8, int16])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Int32, priorityGeneric, applyAffineGeneric[uint8, int32])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Int64, priorityGeneric, applyAffineGeneric[uint8, int64])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Uint8, priorityGeneric, applyAffineGeneric[uint8, uint8])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Uint16, priorityGeneric, applyAffineGeneric[uint8, uint16])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Uint32, priorityGeneric, applyAffineGeneric[uint8, uint32])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Uint64, priorityGeneric, applyAffineGeneric[uint8, uint64])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Float32, priorityGeneric, applyAffineGeneric[uint8, float32])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Float64, priorityGeneric, applyAffineGeneric[uint8, float64])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[uint8, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Uint8, dtypes.Float16, priorityGeneric, applyAffineGeneric[uint8, float16.Float16])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Int8, priorityGeneric, applyAffineGeneric[uint16, int8])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Int16, priorityGeneric, applyAffineGeneric[uint16, int16])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Int32, priorityGeneric, applyAffineGeneric[uint16, int32])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Int64, priorityGeneric, applyAffineGeneric[uint16, int64])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Uint8, priorityGeneric, applyAffineGeneric[uint16, uint8])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Uint16, priorityGeneric, applyAffineGeneric[uint16, uint16])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Uint32, priorityGeneric, applyAffineGeneric[uint16, uint32])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Uint64, priorityGeneric, applyAffineGeneric[uint16, uint64])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Float32, priorityGeneric, applyAffineGeneric[uint16, float32])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Float64, priorityGeneric, applyAffineGeneric[uint16, float64])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[uint16, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Uint16, dtypes.Float16, priorityGeneric, applyAffineGeneric[uint16, float16.Float16])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Int8, priorityGeneric, applyAffineGeneric[uint32, int8])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Int16, priorityGeneric, applyAffineGeneric[uint32, int16])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Int32, priorityGeneric, applyAffineGeneric[uint32, int32])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Int64, priorityGeneric, applyAffineGeneric[uint32, int64])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Uint8, priorityGeneric, applyAffineGeneric[uint32, uint8])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Uint16, priorityGeneric, applyAffineGeneric[uint32, uint16])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Uint32, priorityGeneric, applyAffineGeneric[uint32, uint32])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Uint64, priorityGeneric, applyAffineGeneric[uint32, uint64])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Float32, priorityGeneric, applyAffineGeneric[uint32, float32])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Float64, priorityGeneric, applyAffineGeneric[uint32, float64])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[uint32, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Uint32, dtypes.Float16, priorityGeneric, applyAffineGeneric[uint32, float16.Float16])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Int8, priorityGeneric, applyAffineGeneric[uint64, int8])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Int16, priorityGeneric, applyAffineGeneric[uint64, int16])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Int32, priorityGeneric, applyAffineGeneric[uint64, int32])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Int64, priorityGeneric, applyAffineGeneric[uint64, int64])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Uint8, priorityGeneric, applyAffineGeneric[uint64, uint8])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Uint16, priorityGeneric, applyAffineGeneric[uint64, uint16])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Uint32, priorityGeneric, applyAffineGeneric[uint64, uint32])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Uint64, priorityGeneric, applyAffineGeneric[uint64, uint64])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Float32, priorityGeneric, applyAffineGeneric[uint64, float32])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Float64, priorityGeneric, applyAffineGeneric[uint64, float64])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[uint64, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Uint64, dtypes.Float16, priorityGeneric, applyAffineGeneric[uint64, float16.Float16])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Int8, priorityGeneric, applyAffineGeneric[float32, int8])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Int16, priorityGeneric, applyAffineGeneric[float32, int16])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Int32, priorityGeneric, applyAffineGeneric[float32, int32])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Int64, priorityGeneric, applyAffineGeneric[float32, int64])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Uint8, priorityGeneric, applyAffineGeneric[float32, uint8])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Uint16, priorityGeneric, applyAffineGeneric[float32, uint16])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Uint32, priorityGeneric, applyAffineGeneric[float32, uint32])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Uint64, priorityGeneric, applyAffineGeneric[float32, uint64])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Float32, priorityGeneric, applyAffineGeneric[float32, float32])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Float64, priorityGeneric, applyAffineGeneric[float32, float64])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[float32, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Float32, dtypes.Float16, priorityGeneric, applyAffineGeneric[float32, float16.Float16])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Int8, priorityGeneric, applyAffineGeneric[float64, int8])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Int16, priorityGeneric, applyAffineGeneric[float64, int16])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Int32, priorityGeneric, applyAffineGeneric[float64, int32])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Int64, priorityGeneric, applyAffineGeneric[float64, int64])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Uint8, priorityGeneric, applyAffineGeneric[float64, uint8])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Uint16, priorityGeneric, applyAffineGeneric[float64, uint16])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Uint32, priorityGeneric, applyAffineGeneric[float64, uint32])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Uint64, priorityGeneric, applyAffineGeneric[float64, uint64])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Float32, priorityGeneric, applyAffineGeneric[float64, float32])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Float64, priorityGeneric, applyAffineGeneric[float64, float64])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[float64, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Float64, dtypes.Float16, priorityGeneric, applyAffineGeneric[float64, float16.Float16])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Int8, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, int8])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Int16, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, int16])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Int32, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, int32])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Int64, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, int64])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Uint8, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, uint8])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Uint16, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, uint16])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Uint32, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, uint32])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Uint64, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, uint64])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Float32, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, float32])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Float64, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, float64])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.BFloat16, dtypes.Float16, priorityGeneric, applyAffineGeneric[bfloat16.BFloat16, float16.Float16])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Int8, priorityGeneric, applyAffineGeneric[float16.Float16, int8])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Int16, priorityGeneric, applyAffineGeneric[float16.Float16, int16])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Int32, priorityGeneric, applyAffineGeneric[float16.Float16, int32])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Int64, priorityGeneric, applyAffineGeneric[float16.Float16, int64])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Uint8, priorityGeneric, applyAffineGeneric[float16.Float16, uint8])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Uint16, priorityGeneric, applyAffineGeneric[float16.Float16, uint16])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Uint32, priorityGeneric, applyAffineGeneric[float16.Float16, uint32])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Uint64, priorityGeneric, applyAffineGeneric[float16.Float16, uint64])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Float32, priorityGeneric, applyAffineGeneric[float16.Float16, float32])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Float64, priorityGeneric, applyAffineGeneric[float16.Float16, float64])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.BFloat16, priorityGeneric, applyAffineGeneric[float16.Float16, bfloat16.BFloat16])
	affineFlatPairMap.Register(dtypes.Float16, dtypes.Float16, priorityGeneric, applyAffineGeneric[float16.Float16, float16.Float16])
}
