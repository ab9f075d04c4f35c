// Package vec implements a generic, growable, contiguous-storage vector for Go.
//
// # Overview
//
// A Vector keeps its elements in one contiguous block and regrows the block
// by doubling as elements are appended. Unlike append on a built-in slice,
// every element construction, copy, move, and destruction runs through a
// per-vector descriptor of lifecycle callbacks, any of which may fail. This
// is particularly useful for:
//
//   - Elements that own external resources (handles, buffers, registrations)
//   - Element types whose construction or copying can fail and must report it
//   - Move-only element types that must never be silently duplicated
//   - Code that needs defined container state after a failed operation
//
// # Basic Usage
//
//	v := vec.New[int]()   // empty, nothing allocated
//	defer v.Release()     // destroy elements, free the block
//
//	// Append and insert
//	v.PushBack(10)
//	v.PushBack(30)
//	v.Insert(1, 20) // {10, 20, 30}
//
//	// Access elements
//	first := *v.At(0)
//	for _, x := range v.Slice() {
//		_ = x
//	}
//
//	// Remove elements
//	v.Erase(0)  // shift left
//	v.PopBack() // drop the last
//
// # Element Lifecycle
//
// Types with nontrivial lifecycles supply a Funcs descriptor at
// construction:
//
//	v := vec.NewWith(vec.Funcs[Conn]{
//		Clone:   func(c *Conn) (Conn, error) { return c.Dup() },
//		Destroy: func(c *Conn) { c.Close() },
//	})
//
// Nil callbacks fall back to plain assignment, so the zero Funcs treats
// elements as ordinary data. NoCopy marks a type move-only; copying
// operations on such a vector panic.
//
// # Growth and Relocation
//
// An append into a full block allocates a block of double the capacity
// (one slot from empty) and relocates the live elements into it. Elements
// travel by move when moving cannot fail midway and by copy otherwise, so
// the old block stays intact until the new one is fully built. Reserve and
// Resize allocate exactly the requested capacity.
//
// # Failure Guarantees
//
// Operations that can fail return an error and document one of two
// guarantees. Strong: the vector is exactly as it was before the call.
// Basic: the vector is valid and releasable but element values may have
// been lost. Appends are always strong; inserting into the middle of spare
// capacity is basic, because elements are shifted in place.
//
// # Performance Characteristics
//
//   - PushBack/EmplaceBack: O(1) amortized, O(log n) reallocations over n appends
//   - Insert/Erase at position i: O(n - i) element moves
//   - At/Slice/Len/Cap: O(1)
//   - Swap/MoveFrom: O(1), no element is touched
//
// # Important Notes
//
//   - Pointers from At and views from Slice are invalidated by reallocation
//   - A Vector is not safe for concurrent use
//   - After Release, operations panic and metrics report an empty vector
//   - Out-of-range positions panic; failed element callbacks return errors
//
// # Metrics and Monitoring
//
// The vector tracks its shape and growth history:
//
//	metrics := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization * 100)
//	fmt.Printf("Live bytes: %d\n", metrics.Bytes)
//	fmt.Printf("Reallocations: %d\n", metrics.Reallocs)
package vec
