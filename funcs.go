package vec

// Funcs describes how a Vector manages values of its element type. Every
// field is optional; the zero Funcs treats elements as plain data that can
// be created, copied, moved, and dropped by assignment. Types that own
// external resources, or whose lifecycle steps can fail, supply callbacks.
//
// A Vector captures its Funcs at construction and never changes them.
type Funcs[T any] struct {
	// New produces a fresh element for default construction, as done by
	// Resize growth and nil-build Emplace. Nil means the zero value.
	New func() (T, error)

	// Clone produces an independent copy of *src. Nil means plain
	// assignment. Must be nil when NoCopy is set.
	Clone func(src *T) (T, error)

	// Move transfers the value out of *src, leaving *src safe to destroy.
	// Nil means assignment followed by zeroing the source.
	Move func(src *T) (T, error)

	// Destroy releases resources held by *p. It may run on zero or
	// moved-from values and must treat them as empty. The slot is zeroed
	// afterward whether or not Destroy is set, so dropped slots never pin
	// memory.
	Destroy func(*T)

	// NoCopy marks the element type move-only. Copying operations
	// (PushBack, Insert, Clone, CopyFrom) panic for such a vector.
	NoCopy bool

	// MoveSafe declares that Move never returns an error. Relocation
	// during regrowth moves elements when it cannot be made to fail
	// midway, and copies them otherwise; MoveSafe opts a fallible-looking
	// Move into the moving path.
	MoveSafe bool
}

func (f Funcs[T]) validate() {
	if f.NoCopy && f.Clone != nil {
		panic("vec: NoCopy with a Clone callback")
	}
}

// relocateByMove decides, once per relocation, whether elements travel to
// regrown storage by move or by copy. Moving is safe when it cannot fail
// (no Move callback, or one declared MoveSafe); otherwise copying keeps the
// old block intact until the new one is fully built. Move-only types have
// no copy to fall back on and always move.
func (f Funcs[T]) relocateByMove() bool {
	return f.Move == nil || f.MoveSafe || f.NoCopy
}

func newSlot[T any](f Funcs[T]) (T, error) {
	if f.New != nil {
		return f.New()
	}
	var zero T
	return zero, nil
}

func cloneSlot[T any](f Funcs[T], src *T) (T, error) {
	if f.NoCopy {
		panic("vec: copy of no-copy elements")
	}
	if f.Clone != nil {
		return f.Clone(src)
	}
	return *src, nil
}

func moveSlot[T any](f Funcs[T], src *T) (T, error) {
	if f.Move != nil {
		return f.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

func destroySlot[T any](f Funcs[T], p *T) {
	if f.Destroy != nil {
		f.Destroy(p)
	}
	var zero T
	*p = zero
}

// constructSlots default-constructs every slot in dst. On failure the slots
// built so far are destroyed and dst is left as it was found.
func constructSlots[T any](f Funcs[T], dst []T) error {
	for i := range dst {
		v, err := newSlot(f)
		if err != nil {
			destroySlots(f, dst[:i])
			return err
		}
		dst[i] = v
	}
	return nil
}

// cloneSlots copies src into dst slot by slot. On failure the copies built
// so far are destroyed; src is never modified.
func cloneSlots[T any](f Funcs[T], dst, src []T) error {
	for i := range src {
		v, err := cloneSlot(f, &src[i])
		if err != nil {
			destroySlots(f, dst[:i])
			return err
		}
		dst[i] = v
	}
	return nil
}

// moveSlots transfers src into dst slot by slot. On failure the transfers
// completed so far are destroyed in dst; the corresponding src slots have
// already been emptied by their Move, so only the untouched suffix of src
// still holds live values.
func moveSlots[T any](f Funcs[T], dst, src []T) error {
	for i := range src {
		v, err := moveSlot(f, &src[i])
		if err != nil {
			destroySlots(f, dst[:i])
			return err
		}
		dst[i] = v
	}
	return nil
}

// relocateSlots carries the live elements of src into dst during regrowth,
// by move or copy per relocateByMove. Without a Move callback the transfer
// is a bulk copy with the source cleared, so plain-data elements relocate
// at memmove speed.
func relocateSlots[T any](f Funcs[T], dst, src []T) error {
	if f.relocateByMove() {
		if f.Move == nil {
			copy(dst, src)
			clear(src)
			return nil
		}
		return moveSlots(f, dst, src)
	}
	return cloneSlots(f, dst, src)
}

// destroySlots drops every element in s and zeroes the slots, so dead
// ranges hold no stale pointers for the collector to trace.
func destroySlots[T any](f Funcs[T], s []T) {
	if f.Destroy != nil {
		for i := range s {
			f.Destroy(&s[i])
		}
	}
	clear(s)
}

// assignSlot replaces the live value in dst with a copy of src. The copy is
// made first, so a failed clone leaves dst untouched.
func assignSlot[T any](f Funcs[T], dst, src *T) error {
	v, err := cloneSlot(f, src)
	if err != nil {
		return err
	}
	destroySlot(f, dst)
	*dst = v
	return nil
}

// moveAssignSlot replaces the live value in dst with the value moved out of
// src. The move happens first, so a failed move leaves dst untouched.
func moveAssignSlot[T any](f Funcs[T], dst, src *T) error {
	v, err := moveSlot(f, src)
	if err != nil {
		return err
	}
	destroySlot(f, dst)
	*dst = v
	return nil
}
