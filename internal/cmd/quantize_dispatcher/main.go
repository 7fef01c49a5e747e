// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// quantize_dispatcher generates the dtype-pair registrations for the quantize
// package's flat kernels: every (input, output) pair of supported scalar
// dtypes gets the generic kernel registered at priorityGeneric, so the
// hand-written specializations (registered at priorityTyped or priorityArch)
// take precedence.
//
// It is meant to be run by `go generate` from pkg/core/quantize.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"text/template"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

type DTypeInfo struct {
	DType, GoType string
}

type MapPairInfo struct {
	MapName, Generic string
	DTypes1, DTypes2 []DTypeInfo
}

type Data struct {
	PairMaps []MapPairInfo
}

var (
	// data lists the pair maps to populate, their generic kernel and the dtype
	// sets to instantiate it for.
	data = Data{
		PairMaps: []MapPairInfo{
			{
				MapName: "convertFlatPairMap", Generic: "applyConvertGeneric",
				DTypes1: makeDTypes(true, true, true, true),
				DTypes2: makeDTypes(true, true, true, true),
			},
			{
				MapName: "affineFlatPairMap", Generic: "applyAffineGeneric",
				DTypes1: makeDTypes(true, true, true, true),
				DTypes2: makeDTypes(true, true, true, true),
			},
		},
	}
	fileName = "gen_register_dtypes.go"
)

func makeDTypes(ints, uints, floats, floats16 bool) []DTypeInfo {
	dtypes := make([]DTypeInfo, 0, 16)
	if ints {
		dtypes = append(dtypes,
			DTypeInfo{"Int8", "int8"},
			DTypeInfo{"Int16", "int16"},
			DTypeInfo{"Int32", "int32"},
			DTypeInfo{"Int64", "int64"},
		)
	}
	if uints {
		dtypes = append(dtypes,
			DTypeInfo{"Uint8", "uint8"},
			DTypeInfo{"Uint16", "uint16"},
			DTypeInfo{"Uint32", "uint32"},
			DTypeInfo{"Uint64", "uint64"},
		)
	}
	if floats {
		dtypes = append(dtypes,
			DTypeInfo{"Float32", "float32"},
			DTypeInfo{"Float64", "float64"},
		)
	}
	if floats16 {
		dtypes = append(dtypes,
			DTypeInfo{"BFloat16", "bfloat16.BFloat16"},
			DTypeInfo{"Float16", "float16.Float16"},
		)
	}
	return dtypes
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	registerTemplate := template.Must(
		template.
			New(fileName).
			Parse(

				`/***** File generated by ./internal/cmd/quantize_dispatcher. Don't edit it directly. *****/

package quantize

import (
	"github.com/gomlx/quantize/pkg/core/dtypes"
	"github.com/gomlx/quantize/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)


func init() {
{{- range .PairMaps}}

	// DTypePairMap: {{.MapName}}
{{- $mapName := .MapName }}
{{- $generic := .Generic }}
{{- $dtypes2 := .DTypes2 }}
{{- range .DTypes1 }}
{{- $dtype1 := .DType }}
{{- $goType1 := .GoType }}
{{- range $dtypes2 }}
	{{$mapName}}.Register(dtypes.{{$dtype1}}, dtypes.{{.DType}}, priorityGeneric, {{$generic}}[{{$goType1}}, {{.GoType}}])
{{- end }}
{{- end }}
{{- end }}

}
`))
	fullPath := path.Join(must.M1(os.Getwd()), fileName)
	f := must.M1(os.Create(fullPath))
	must.M(registerTemplate.Execute(f, data))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ quantize_dispatcher:  \tsuccessfully generated %s\n", fullPath)
}
