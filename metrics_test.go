package vec

import (
	"testing"
	"unsafe"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int64]()

	// Test initial state
	if v.Len() != 0 {
		t.Errorf("Initial Len = %d, want 0", v.Len())
	}
	if v.Cap() != 0 {
		t.Errorf("Initial Cap = %d, want 0", v.Cap())
	}
	if v.Bytes() != 0 {
		t.Errorf("Initial Bytes = %d, want 0", v.Bytes())
	}
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}
	if v.ElemSize() != int(unsafe.Sizeof(int64(0))) {
		t.Errorf("ElemSize = %d, want %d", v.ElemSize(), int(unsafe.Sizeof(int64(0))))
	}

	// Append some data
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)

	if v.Bytes() != 3*v.ElemSize() {
		t.Errorf("Bytes = %d, want %d", v.Bytes(), 3*v.ElemSize())
	}
	if v.Footprint() != v.Cap()*v.ElemSize() {
		t.Errorf("Footprint = %d, want %d", v.Footprint(), v.Cap()*v.ElemSize())
	}

	utilization := v.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}
	if v.Reallocs() == 0 {
		t.Error("Reallocs should be > 0 after growth")
	}

	// Test metrics snapshot
	metrics := v.Metrics()
	if metrics.Len != v.Len() {
		t.Errorf("Metrics.Len = %d, want %d", metrics.Len, v.Len())
	}
	if metrics.Cap != v.Cap() {
		t.Errorf("Metrics.Cap = %d, want %d", metrics.Cap, v.Cap())
	}
	if metrics.ElemSize != v.ElemSize() {
		t.Errorf("Metrics.ElemSize = %d, want %d", metrics.ElemSize, v.ElemSize())
	}
	if metrics.Bytes != v.Bytes() {
		t.Errorf("Metrics.Bytes = %d, want %d", metrics.Bytes, v.Bytes())
	}
	if metrics.Footprint != v.Footprint() {
		t.Errorf("Metrics.Footprint = %d, want %d", metrics.Footprint, v.Footprint())
	}
	if metrics.Reallocs != v.Reallocs() {
		t.Errorf("Metrics.Reallocs = %d, want %d", metrics.Reallocs, v.Reallocs())
	}
	if metrics.Utilization != v.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, v.Utilization())
	}
}

func TestVectorMetricsAfterRelease(t *testing.T) {
	v := New[int]()
	v.PushBack(1)
	v.PushBack(2)

	v.Release()

	if v.Len() != 0 {
		t.Errorf("Len after Release = %d, want 0", v.Len())
	}
	if v.Cap() != 0 {
		t.Errorf("Cap after Release = %d, want 0", v.Cap())
	}
	if v.Bytes() != 0 {
		t.Errorf("Bytes after Release = %d, want 0", v.Bytes())
	}
	if v.Footprint() != 0 {
		t.Errorf("Footprint after Release = %d, want 0", v.Footprint())
	}
	if v.Utilization() != 0 {
		t.Errorf("Utilization after Release = %f, want 0", v.Utilization())
	}
}

func TestUtilizationEdgeCases(t *testing.T) {
	// Released vector
	v := New[int]()
	v.PushBack(1)
	v.Release()
	if v.Utilization() != 0 {
		t.Errorf("Released vector Utilization = %f, want 0", v.Utilization())
	}

	// Capacity but no elements
	v2 := New[int]()
	v2.Reserve(100)
	if v2.Utilization() != 0 {
		t.Errorf("Empty vector Utilization = %f, want 0", v2.Utilization())
	}

	// Full utilization
	v3, _ := NewSize[int](10)
	if v3.Utilization() != 1 {
		t.Errorf("Full vector Utilization = %f, want 1", v3.Utilization())
	}
}

func TestVectorString(t *testing.T) {
	v, _ := NewSize[int](3)
	v.Reserve(8)

	if got := v.String(); got != "Vector{len=3, cap=8}" {
		t.Errorf("String() = %q, want %q", got, "Vector{len=3, cap=8}")
	}
}

func BenchmarkMetrics(b *testing.B) {
	v := New[int]()
	for i := 0; i < 1000; i++ {
		v.PushBack(i)
	}

	b.Run("Len", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Len()
		}
	})

	b.Run("Cap", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Cap()
		}
	})

	b.Run("Utilization", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Utilization()
		}
	})

	b.Run("Metrics", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Metrics()
		}
	})
}
