package quantize

import (
	"testing"

	"github.com/gomlx/quantize/pkg/core/fpenv"
)

const benchFlatSize = 4096

func BenchmarkConvertFlatFloat32ToInt8(b *testing.B) {
	mode := fpenv.Default()
	in := make([]float32, benchFlatSize)
	out := make([]int8, benchFlatSize)
	for i := range in {
		in[i] = float32(i%512) - 256.5
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ConvertFlat(mode, in, out)
	}
}

func BenchmarkConvertFlatUint8ToInt8(b *testing.B) {
	mode := fpenv.Default()
	in := make([]uint8, benchFlatSize)
	out := make([]int8, benchFlatSize)
	for i := range in {
		in[i] = uint8(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ConvertFlat(mode, in, out)
	}
}

func BenchmarkAffineFlatFloat32ToInt8(b *testing.B) {
	mode := fpenv.Default()
	in := make([]float32, benchFlatSize)
	out := make([]int8, benchFlatSize)
	for i := range in {
		in[i] = float32(i % 256)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AffineFlat(mode, in, out, 0.5, 0.25)
	}
}
