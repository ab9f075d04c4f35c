package vec

import "math"

// Vector is a growable sequence of T stored contiguously. It keeps its
// elements in a Storage block, tracks how many leading slots are live, and
// performs every element construction and destruction itself through its
// Funcs descriptor.
//
// Capacity grows by doubling when an append or insert finds the block full,
// so n appends trigger O(log n) reallocations. Reserve and Resize allocate
// exactly what is asked for.
//
// Each mutating operation documents its failure guarantee. "Strong" means a
// returned error left the vector exactly as it was. "Basic" means the
// vector is still valid and releasable but element values may have been
// lost. Operations on plain-data elements (zero Funcs) never fail.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data     Storage[T]
	size     int
	funcs    Funcs[T]
	reallocs int
	released bool
}

// New returns an empty vector of plain-data elements. It allocates nothing
// until the first element arrives.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWith returns an empty vector whose elements are managed by f.
// Panics if f is inconsistent.
func NewWith[T any](f Funcs[T]) *Vector[T] {
	f.validate()
	return &Vector[T]{funcs: f}
}

// NewSize returns a vector of n default-constructed plain-data elements,
// with capacity exactly n. Negative n panics.
func NewSize[T any](n int) (*Vector[T], error) {
	return NewSizeWith(n, Funcs[T]{})
}

// NewSizeWith returns a vector of n elements default-constructed through f,
// with capacity exactly n. If construction of any element fails, the
// elements built before it are destroyed and the error is returned with
// nothing allocated. Negative n panics.
func NewSizeWith[T any](n int, f Funcs[T]) (*Vector[T], error) {
	if n < 0 {
		panic("vec: negative size")
	}
	f.validate()
	nd, err := NewStorage[T](n)
	if err != nil {
		return nil, err
	}
	if err := constructSlots(f, nd.window(0, n)); err != nil {
		nd.Release()
		return nil, err
	}
	v := &Vector[T]{funcs: f}
	v.data.steal(nd)
	v.size = n
	return v, nil
}

func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic("vec: use after Release()")
	}
}

// At returns the address of element i. The pointer stays valid until the
// next operation that reallocates or shifts elements. Panics if i is out of
// range.
func (v *Vector[T]) At(i int) *T {
	v.panicIfReleased()
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.At(i)
}

// Slice returns the live elements as a slice sharing the vector's storage.
// Mutating elements through it is fine; appending to it is not. The view is
// invalidated by any reallocating operation.
func (v *Vector[T]) Slice() []T {
	v.panicIfReleased()
	return v.data.window(0, v.size)
}

// PushBack appends a copy of value. Strong guarantee. Panics for no-copy
// element types.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.Emplace(v.size, v.cloneInto(&value))
	return err
}

// EmplaceBack appends an element constructed in place by build and returns
// its address. Strong guarantee. A nil build default-constructs.
func (v *Vector[T]) EmplaceBack(build func(*T) error) (*T, error) {
	return v.Emplace(v.size, build)
}

// Insert places a copy of value at position i, shifting later elements
// right. Strong guarantee when the insert triggers a reallocation, basic
// otherwise. Panics for no-copy element types or if i is out of range
// (i == Len() appends).
func (v *Vector[T]) Insert(i int, value T) error {
	_, err := v.Emplace(i, v.cloneInto(&value))
	return err
}

// Emplace constructs an element at position i in place via build, shifting
// later elements right, and returns the new element's address. A nil build
// default-constructs. Strong guarantee when the insert triggers a
// reallocation, basic otherwise. Panics if i is out of range (i == Len()
// appends).
//
// build receives a pointer to an uninitialized slot. If it returns an
// error it must leave nothing live behind; the vector re-zeroes the slot.
func (v *Vector[T]) Emplace(i int, build func(*T) error) (*T, error) {
	v.panicIfReleased()
	if i < 0 || i > v.size {
		panic("vec: position out of range")
	}
	if build == nil {
		build = func(p *T) error {
			nv, err := newSlot(v.funcs)
			if err != nil {
				return err
			}
			*p = nv
			return nil
		}
	}
	if v.size == v.data.Cap() {
		return v.emplaceRealloc(i, build)
	}
	return v.emplaceInPlace(i, build)
}

// emplaceRealloc grows the block and inserts in one pass: the new element
// is constructed in the new block first, then the prefix and suffix of the
// old block are relocated around it. Until the final swap the old block is
// untouched unless relocation runs by fallible move, so any error unwinds
// to the pre-call state.
func (v *Vector[T]) emplaceRealloc(i int, build func(*T) error) (*T, error) {
	c := v.data.Cap()
	newCap := 1
	if c > 0 {
		if c > math.MaxInt/2 {
			return nil, ErrTooLarge
		}
		newCap = 2 * c
	}
	nd, err := NewStorage[T](newCap)
	if err != nil {
		return nil, err
	}
	slot := nd.At(i)
	if err := build(slot); err != nil {
		nd.Release()
		return nil, err
	}
	if err := relocateSlots(v.funcs, nd.window(0, i), v.data.window(0, i)); err != nil {
		destroySlot(v.funcs, slot)
		nd.Release()
		return nil, err
	}
	if err := relocateSlots(v.funcs, nd.window(i+1, v.size+1), v.data.window(i, v.size)); err != nil {
		destroySlots(v.funcs, nd.window(0, i+1))
		nd.Release()
		return nil, err
	}
	destroySlots(v.funcs, v.data.window(0, v.size))
	v.data.Swap(nd)
	nd.Release()
	v.size++
	v.reallocs++
	return slot, nil
}

// emplaceInPlace inserts into spare capacity. An interior insert builds the
// element off to the side, move-constructs the last element into the first
// spare slot, shifts the tail right by move assignment, and move-assigns
// the built element into place. A failure mid-shift loses values but never
// leaks one: the stray slot past the end is destroyed before returning.
func (v *Vector[T]) emplaceInPlace(i int, build func(*T) error) (*T, error) {
	slots := v.data.window(0, v.size+1)
	if i == v.size {
		if err := build(&slots[i]); err != nil {
			var zero T
			slots[i] = zero
			return nil, err
		}
		v.size++
		return &slots[i], nil
	}
	var tmp T
	if err := build(&tmp); err != nil {
		return nil, err
	}
	last, err := moveSlot(v.funcs, &slots[v.size-1])
	if err != nil {
		destroySlot(v.funcs, &tmp)
		return nil, err
	}
	slots[v.size] = last
	for j := v.size - 1; j > i; j-- {
		if err := moveAssignSlot(v.funcs, &slots[j], &slots[j-1]); err != nil {
			destroySlot(v.funcs, &tmp)
			destroySlot(v.funcs, &slots[v.size])
			return nil, err
		}
	}
	if err := moveAssignSlot(v.funcs, &slots[i], &tmp); err != nil {
		destroySlot(v.funcs, &tmp)
		destroySlot(v.funcs, &slots[v.size])
		return nil, err
	}
	v.size++
	return &slots[i], nil
}

func (v *Vector[T]) cloneInto(value *T) func(*T) error {
	return func(p *T) error {
		c, err := cloneSlot(v.funcs, value)
		if err != nil {
			return err
		}
		*p = c
		return nil
	}
}

// PopBack destroys the last element. Never fails. Panics on an empty
// vector.
func (v *Vector[T]) PopBack() {
	v.panicIfReleased()
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	destroySlot(v.funcs, v.data.At(v.size-1))
	v.size--
}

// Erase removes the element at position i, shifting later elements left by
// move assignment and destroying the vacated last slot. Basic guarantee: a
// move failing mid-shift returns the error with the size unchanged and
// every slot still valid. Panics if i is out of range.
func (v *Vector[T]) Erase(i int) error {
	v.panicIfReleased()
	if i < 0 || i >= v.size {
		panic("vec: position out of range")
	}
	slots := v.data.window(0, v.size)
	for j := i; j+1 < v.size; j++ {
		if err := moveAssignSlot(v.funcs, &slots[j], &slots[j+1]); err != nil {
			return err
		}
	}
	destroySlot(v.funcs, &slots[v.size-1])
	v.size--
	return nil
}

// Resize changes the element count to n. Shrinking destroys the tail and
// never fails. Growing reserves capacity for exactly n if needed, then
// default-constructs the new tail; if a construction fails, the partial
// tail is destroyed and size and contents are unchanged, though capacity
// may have grown. Negative n panics.
func (v *Vector[T]) Resize(n int) error {
	v.panicIfReleased()
	if n < 0 {
		panic("vec: negative size")
	}
	switch {
	case n < v.size:
		destroySlots(v.funcs, v.data.window(n, v.size))
		v.size = n
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := constructSlots(v.funcs, v.data.window(v.size, n)); err != nil {
			return err
		}
		v.size = n
	}
	return nil
}

// Reserve grows capacity to exactly n, relocating the live elements into a
// new block. It does nothing when n does not exceed the current capacity.
// Strong guarantee unless relocation runs by fallible move.
func (v *Vector[T]) Reserve(n int) error {
	v.panicIfReleased()
	if n <= v.data.Cap() {
		return nil
	}
	nd, err := NewStorage[T](n)
	if err != nil {
		return err
	}
	if err := relocateSlots(v.funcs, nd.window(0, v.size), v.data.window(0, v.size)); err != nil {
		nd.Release()
		return err
	}
	destroySlots(v.funcs, v.data.window(0, v.size))
	v.data.Swap(nd)
	nd.Release()
	v.reallocs++
	return nil
}

// Clone returns an independent copy with the same Funcs and capacity equal
// to the length. If an element copy fails, everything built so far is
// destroyed and the error returned. Panics for no-copy element types.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.panicIfReleased()
	nd, err := NewStorage[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := cloneSlots(v.funcs, nd.window(0, v.size), v.data.window(0, v.size)); err != nil {
		nd.Release()
		return nil, err
	}
	c := &Vector[T]{funcs: v.funcs}
	c.data.steal(nd)
	c.size = v.size
	return c, nil
}

// CopyFrom replaces v's contents with a copy of src's. Both vectors must
// manage their elements compatibly; v keeps its own Funcs. Copying into
// itself does nothing.
//
// When src does not fit in v's block, the copy is built in a fresh block
// first and adopted only on success (strong guarantee). Otherwise elements
// are assigned in place and the tail destroyed or extended, and an error
// partway through leaves a valid mix of old and new values (basic
// guarantee). Panics for no-copy element types.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	v.panicIfReleased()
	src.panicIfReleased()
	if v == src {
		return nil
	}
	if src.size > v.data.Cap() {
		c, err := src.Clone()
		if err != nil {
			return err
		}
		destroySlots(v.funcs, v.data.window(0, v.size))
		v.data.steal(&c.data)
		v.size, c.size = c.size, 0
		v.reallocs++
		return nil
	}
	n := min(v.size, src.size)
	dst := v.data.window(0, v.size)
	from := src.data.window(0, src.size)
	for i := 0; i < n; i++ {
		if err := assignSlot(v.funcs, &dst[i], &from[i]); err != nil {
			return err
		}
	}
	switch {
	case src.size < v.size:
		destroySlots(v.funcs, v.data.window(src.size, v.size))
	case src.size > v.size:
		if err := cloneSlots(v.funcs, v.data.window(v.size, src.size), from[v.size:]); err != nil {
			return err
		}
	}
	v.size = src.size
	return nil
}

// MoveFrom takes over src's elements, block, and Funcs in constant time,
// destroying v's previous contents. src is left empty but usable. Moving
// from itself does nothing. Never fails.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.panicIfReleased()
	src.panicIfReleased()
	if v == src {
		return
	}
	destroySlots(v.funcs, v.data.window(0, v.size))
	v.data.steal(&src.data)
	v.size = src.size
	v.funcs = src.funcs
	src.size = 0
}

// Swap exchanges the entire state of two vectors in constant time. Swapping
// with itself does nothing. Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.panicIfReleased()
	other.panicIfReleased()
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.funcs, other.funcs = other.funcs, v.funcs
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

// Release destroys all elements and frees the block. After Release, any
// further operation on the vector panics, except the metric accessors,
// which report an empty vector, and Release itself, which does nothing.
func (v *Vector[T]) Release() {
	if v.released {
		return
	}
	destroySlots(v.funcs, v.data.window(0, v.size))
	v.data.Release()
	v.size = 0
	v.released = true
}
