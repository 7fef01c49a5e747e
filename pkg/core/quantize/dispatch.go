package quantize

import (
	"github.com/gomlx/exceptions"

	"github.com/gomlx/quantize/pkg/core/dtypes"
)

// Priority tiers for registered kernels: a registration only replaces an
// existing one if its priority is strictly higher. Generated generic kernels
// use priorityGeneric; hand-written per-pair specializations use
// priorityTyped; architecture-specific (SIMD) implementations would use
// priorityArch.
const (
	priorityGeneric = iota
	priorityTyped
	priorityArch
)

// DTypePairMap dispatches on an (input dtype, output dtype) pair to a
// registered function. The functions are stored as any and type-asserted by
// the caller to the concrete signature the map's domain uses.
//
// Registration happens in init functions; after that the map is read-only and
// safe for concurrent use.
type DTypePairMap struct {
	Name       string
	fnMap      [dtypes.MaxDTypes][dtypes.MaxDTypes]any
	priorities [dtypes.MaxDTypes][dtypes.MaxDTypes]int
}

// NewDTypePairMap creates a new dispatch map for a class of functions.
func NewDTypePairMap(name string) *DTypePairMap {
	return &DTypePairMap{Name: name}
}

// Register a function to handle the given dtype pair. It only takes effect if
// the priority is higher than that of the currently registered function, so
// specialized kernels can be registered before or after the generic ones.
func (m *DTypePairMap) Register(from, to dtypes.DType, priority int, fn any) {
	if from >= dtypes.MaxDTypes || to >= dtypes.MaxDTypes {
		exceptions.Panicf("dtype pair (%s, %s) not supported by %s", from, to, m.Name)
	}
	if m.fnMap[from][to] != nil && m.priorities[from][to] >= priority {
		return
	}
	m.fnMap[from][to] = fn
	m.priorities[from][to] = priority
}

// Get returns the function registered for the dtype pair. It panics (with an
// exceptions throw) if no function is registered for the pair.
func (m *DTypePairMap) Get(from, to dtypes.DType) any {
	if from >= dtypes.MaxDTypes || to >= dtypes.MaxDTypes {
		exceptions.Panicf("dtype pair (%s, %s) not supported by %s", from, to, m.Name)
	}
	fn := m.fnMap[from][to]
	if fn == nil {
		exceptions.Panicf("dtype pair (%s, %s) not supported by %s", from, to, m.Name)
	}
	return fn
}
