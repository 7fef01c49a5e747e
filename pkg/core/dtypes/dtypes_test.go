// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/gomlx/quantize/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

func TestDType_HighestLowestValues(t *testing.T) {
	if !math.IsInf(Float64.HighestValue().(float64), 1) {
		t.Fatal("expected Float64.HighestValue() to be +Inf")
	}
	if !math.IsInf(float64(Float32.LowestValue().(float32)), -1) {
		t.Fatal("expected Float32.LowestValue() to be -Inf")
	}
	if Int8.LowestValue().(int8) != math.MinInt8 {
		t.Fatalf("expected Int8.LowestValue() to be %d, got %v", math.MinInt8, Int8.LowestValue())
	}
	if Uint8.HighestValue().(uint8) != math.MaxUint8 {
		t.Fatalf("expected Uint8.HighestValue() to be %d, got %v", math.MaxUint8, Uint8.HighestValue())
	}
	if Uint64.LowestValue().(uint64) != 0 {
		t.Fatalf("expected Uint64.LowestValue() to be 0, got %v", Uint64.LowestValue())
	}
	if _, ok := Float16.HighestValue().(float16.Float16); !ok {
		t.Fatal("expected Float16.HighestValue() to be float16.Float16")
	}
	if _, ok := BFloat16.HighestValue().(bfloat16.BFloat16); !ok {
		t.Fatal("expected BFloat16.HighestValue() to be bfloat16.BFloat16")
	}
}

func TestMapOfNames(t *testing.T) {
	if MapOfNames["Float16"] != Float16 {
		t.Fatalf("expected MapOfNames[\"Float16\"] to be Float16, got %v", MapOfNames["Float16"])
	}
	if MapOfNames["float16"] != Float16 {
		t.Fatalf("expected MapOfNames[\"float16\"] to be Float16, got %v", MapOfNames["float16"])
	}
	if MapOfNames["BF16"] != BFloat16 {
		t.Fatalf("expected MapOfNames[\"BF16\"] to be BFloat16, got %v", MapOfNames["BF16"])
	}
	if MapOfNames["u8"] != Uint8 {
		t.Fatalf("expected MapOfNames[\"u8\"] to be Uint8, got %v", MapOfNames["u8"])
	}
}

func TestFromAny(t *testing.T) {
	if FromAny(int64(7)) != Int64 {
		t.Fatalf("expected FromAny(int64(7)) to be Int64, got %v", FromAny(int64(7)))
	}
	if FromAny(float32(13)) != Float32 {
		t.Fatalf("expected FromAny(float32(13)) to be Float32, got %v", FromAny(float32(13)))
	}
	if FromAny(bfloat16.FromFloat32(1.0)) != BFloat16 {
		t.Fatalf("expected FromAny(bfloat16) to be BFloat16, got %v", FromAny(bfloat16.FromFloat32(1.0)))
	}
	if FromAny(float16.Fromfloat32(3.0)) != Float16 {
		t.Fatalf("expected FromAny(float16) to be Float16, got %v", FromAny(float16.Fromfloat32(3.0)))
	}
}

func TestFromGoType(t *testing.T) {
	if FromGoType(reflect.TypeOf(int32(0))) != Int32 {
		t.Fatal("expected FromGoType(int32) to be Int32")
	}
	wantInt := Int64
	if strconv.IntSize == 32 {
		wantInt = Int32
	}
	if FromGoType(reflect.TypeOf(int(0))) != wantInt {
		t.Fatalf("expected FromGoType(int) to be %s", wantInt)
	}
	if FromGoType(reflect.TypeOf(float16.Fromfloat32(1))) != Float16 {
		t.Fatal("expected FromGoType(float16.Float16) to be Float16")
	}
	if FromGoType(reflect.TypeOf("")) != InvalidDType {
		t.Fatal("expected FromGoType(string) to be InvalidDType")
	}
	if FromGoType(reflect.TypeOf([]float32{})) != InvalidDType {
		t.Fatal("expected FromGoType([]float32) to be InvalidDType")
	}
}

func TestFromGenericsType(t *testing.T) {
	if FromGenericsType[int8]() != Int8 {
		t.Fatal("expected FromGenericsType[int8]() to be Int8")
	}
	if FromGenericsType[uint8]() != Uint8 {
		t.Fatal("expected FromGenericsType[uint8]() to be Uint8")
	}
	if FromGenericsType[float16.Float16]() != Float16 {
		t.Fatal("expected FromGenericsType[float16.Float16]() to be Float16")
	}
	if FromGenericsType[bfloat16.BFloat16]() != BFloat16 {
		t.Fatal("expected FromGenericsType[bfloat16.BFloat16]() to be BFloat16")
	}
}

func TestSize(t *testing.T) {
	if Int64.Size() != 8 {
		t.Fatalf("expected Int64.Size() to be 8, got %d", Int64.Size())
	}
	if Float32.Size() != 4 {
		t.Fatalf("expected Float32.Size() to be 4, got %d", Float32.Size())
	}
	if BFloat16.Size() != 2 {
		t.Fatalf("expected BFloat16.Size() to be 2, got %d", BFloat16.Size())
	}
}

func TestIsSubsetOf(t *testing.T) {
	subsets := [][2]DType{
		{Int8, Int8}, {Int8, Int16}, {Int8, Int32}, {Int8, Int64},
		{Uint8, Uint16}, {Uint8, Uint64}, {Uint8, Int16}, {Uint8, Int64},
		{Uint32, Int64}, {Int32, Int64}, {Uint64, Uint64}, {Float32, Float32},
		{BFloat16, BFloat16},
	}
	for _, pair := range subsets {
		if !pair[0].IsSubsetOf(pair[1]) {
			t.Fatalf("expected %s to be a subset of %s", pair[0], pair[1])
		}
	}
	notSubsets := [][2]DType{
		{Int8, Uint8}, {Int8, Uint64}, {Uint8, Int8}, {Int16, Int8},
		{Uint16, Uint8}, {Uint64, Int64}, {Int32, Uint32},
		{Int8, Float32}, {Float32, Float64}, {Float32, Int64},
		{InvalidDType, InvalidDType}, {Bool, Int8},
	}
	for _, pair := range notSubsets {
		if pair[0].IsSubsetOf(pair[1]) {
			t.Fatalf("expected %s to not be a subset of %s", pair[0], pair[1])
		}
	}
}

func TestString(t *testing.T) {
	if BFloat16.String() != "BFloat16" {
		t.Fatalf("expected BFloat16.String() to be \"BFloat16\", got %q", BFloat16.String())
	}
	dtype, err := DTypeString("uint16")
	if err != nil || dtype != Uint16 {
		t.Fatalf("expected DTypeString(\"uint16\") to return Uint16, got %v, %v", dtype, err)
	}
}
