package vec

import (
	"errors"
	"math"
	"unsafe"
)

// ErrTooLarge is returned when a requested capacity needs more bytes than a
// single allocation can address.
var ErrTooLarge = errors.New("vec: capacity too large")

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of any struct containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Storage owns a fixed block of element slots. It allocates and frees slot
// memory but never constructs, destroys, or interprets element values:
// tracking which slots hold live values is entirely its owner's concern.
//
// A Storage is move-only. Transfer ownership with Swap; copying the struct
// value would alias the block and is reported by go vet.
type Storage[T any] struct {
	noCopy noCopy
	slots  []T // len(slots) == capacity; nil when capacity is zero
}

// NewStorage allocates a block of capacity slots, each sized for one T.
// Zero capacity allocates nothing. Negative capacity panics. A block whose
// byte size cannot be addressed fails with ErrTooLarge before anything is
// allocated.
func NewStorage[T any](capacity int) (*Storage[T], error) {
	if capacity < 0 {
		panic("vec: negative capacity")
	}
	s := &Storage[T]{}
	if capacity == 0 {
		return s, nil
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && uintptr(capacity) > uintptr(math.MaxInt)/size {
		return nil, ErrTooLarge
	}
	s.slots = make([]T, capacity)
	return s, nil
}

// Cap returns the number of slots in the block.
func (s *Storage[T]) Cap() int {
	return len(s.slots)
}

// At returns the address of the slot at offset. Offsets run from 0 to Cap()
// inclusive: Cap() itself is the one-past-end address, valid to form but
// never to dereference. Any other offset panics.
func (s *Storage[T]) At(offset int) *T {
	if offset < 0 || offset > len(s.slots) {
		panic("vec: slot offset out of range")
	}
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(s.slots))
	return (*T)(unsafe.Add(base, uintptr(offset)*unsafe.Sizeof(zero)))
}

// Swap exchanges the blocks owned by s and other in constant time. It is
// the atomic-replace primitive a sequence uses to adopt regrown storage.
func (s *Storage[T]) Swap(other *Storage[T]) {
	s.slots, other.slots = other.slots, s.slots
}

// Release drops the block unconditionally. Safe to call on a zero or
// already-released Storage.
func (s *Storage[T]) Release() {
	s.slots = nil
}

// window returns the slot range [i, j) as a slice. The caller is
// responsible for knowing which of those slots hold live values.
func (s *Storage[T]) window(i, j int) []T {
	return s.slots[i:j]
}

// steal moves other's block into s, dropping whatever s held. The source is
// left released. Constant time.
func (s *Storage[T]) steal(other *Storage[T]) {
	s.slots = other.slots
	other.slots = nil
}
