package vec

import (
	"fmt"
	"unsafe"
)

// Len returns the number of live elements. A released vector reports 0.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the vector can hold without reallocating.
// A released vector reports 0.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Bytes returns the number of bytes occupied by live elements.
func (v *Vector[T]) Bytes() int {
	return v.size * v.ElemSize()
}

// Footprint returns the total number of bytes held by the vector's block,
// live or spare.
func (v *Vector[T]) Footprint() int {
	return v.data.Cap() * v.ElemSize()
}

// Utilization returns the ratio of live slots to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocs returns how many times the vector has replaced its block since
// construction. Appending n elements to an empty vector costs O(log n)
// reallocations.
func (v *Vector[T]) Reallocs() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		ElemSize:    v.ElemSize(),
		Bytes:       v.Bytes(),
		Footprint:   v.Footprint(),
		Reallocs:    v.Reallocs(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Slots available without reallocating
	ElemSize    int     // Bytes per slot
	Bytes       int     // Bytes occupied by live elements
	Footprint   int     // Total bytes held by the block
	Reallocs    int     // Block replacements since construction
	Utilization float64 // Ratio of live slots to capacity (0.0-1.0)
}

// String returns a short description of the vector's shape.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector{len=%d, cap=%d}", v.Len(), v.Cap())
}
