package bfloat16

import (
	"math"
	"testing"
)

func TestFromFloat32RoundsToNearestEven(t *testing.T) {
	// 1.0 and values exactly representable round-trip unchanged.
	for _, v := range []float32{0, 1, -1, 0.5, -0.5, 2, 256, -3.140625} {
		if got := FromFloat32(v).Float32(); got != v {
			t.Fatalf("FromFloat32(%v).Float32() = %v, want %v", v, got, v)
		}
	}

	// 1 + 2^-8 is halfway between 1.0 and the next bfloat16 (1 + 2^-7):
	// the tie must go to the even mantissa, which is 1.0.
	half := float32(1 + 1.0/256)
	if got := FromFloat32(half).Float32(); got != 1 {
		t.Fatalf("FromFloat32(%v) = %v, want tie-to-even 1", half, got)
	}
	// Just above the halfway point rounds up.
	above := math.Float32frombits(math.Float32bits(half) + 1)
	want := float32(1 + 1.0/128)
	if got := FromFloat32(above).Float32(); got != want {
		t.Fatalf("FromFloat32(%v) = %v, want %v", above, got, want)
	}
}

func TestSpecialValues(t *testing.T) {
	if !math.IsInf(float64(Inf(1).Float32()), 1) {
		t.Fatal("Inf(1) is not +Inf")
	}
	if !math.IsInf(float64(Inf(-1).Float32()), -1) {
		t.Fatal("Inf(-1) is not -Inf")
	}
	nan := FromFloat32(float32(math.NaN()))
	if !nan.IsNaN() {
		t.Fatalf("FromFloat32(NaN) = %#x, expected a NaN", nan.Bits())
	}
	if Inf(1).IsNaN() {
		t.Fatal("+Inf misreported as NaN")
	}
	// Overflow saturates to infinity, like float32 arithmetic would.
	if !math.IsInf(float64(FromFloat32(math.MaxFloat32).Float32()), 1) {
		t.Fatal("FromFloat32(MaxFloat32) should overflow to +Inf")
	}
}

func TestBitsRoundTrip(t *testing.T) {
	for _, bits := range []uint16{0, 1, 0x3F80, 0x7F80, 0xFF80, SmallestNonzero.Bits()} {
		if FromBits(bits).Bits() != bits {
			t.Fatalf("FromBits(%#x).Bits() != %#x", bits, bits)
		}
	}
	if SmallestNonzero.Float32() == 0 {
		t.Fatal("SmallestNonzero should not be zero")
	}
}
