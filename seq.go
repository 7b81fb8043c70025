package seq

import (
	"errors"
	"fmt"
	"iter"

	"github.com/susupernovaa/seq/rawbuf"
)

// ErrIndexOutOfRange is returned by At when the index falls outside the
// container's observable range [0, Len()).
var ErrIndexOutOfRange = errors.New("index out of range")

// Container is a generic resizable sequence with contiguous storage and an
// explicit capacity, grown by doubling rather than by the runtime's slice
// policy. Exactly the first Len() slots are observable; the remaining
// allocated slots hold unspecified values and are never treated as live.
//
// The zero value is an empty container ready for use. A Container is a
// single-owner value: it is not safe for concurrent mutation, and distinct
// containers never share storage.
type Container[T any] struct {
	buf  rawbuf.Buffer[T]
	size int
}

// New returns a container holding the given values in order. With no
// arguments the container is empty and owns no storage; otherwise capacity
// equals the number of values and the values are copied in.
func New[T any](values ...T) *Container[T] {
	if len(values) == 0 {
		return &Container[T]{}
	}
	buf := rawbuf.Alloc[T](len(values))
	copy(buf.Slots(), values)
	return &Container[T]{buf: buf, size: len(values)}
}

// Make returns a container of n zero-valued elements with capacity n,
// mirroring make([]T, n). n <= 0 yields an empty container.
func Make[T any](n int) *Container[T] {
	if n <= 0 {
		return &Container[T]{}
	}
	return &Container[T]{buf: rawbuf.Alloc[T](n), size: n}
}

// Repeat returns a container of n copies of value with capacity n. n <= 0
// yields an empty container.
func Repeat[T any](value T, n int) *Container[T] {
	if n <= 0 {
		return &Container[T]{}
	}
	buf := rawbuf.Alloc[T](n)
	slots := buf.Slots()
	for i := range slots {
		slots[i] = value
	}
	return &Container[T]{buf: buf, size: n}
}

// Len returns the number of live elements.
func (c *Container[T]) Len() int {
	return c.size
}

// Cap returns the total number of allocated slots. Cap never decreases over
// a container's lifetime except through Move or Swap.
func (c *Container[T]) Cap() int {
	return c.buf.Cap()
}

// IsEmpty reports whether the container holds no live elements.
func (c *Container[T]) IsEmpty() bool {
	return c.size == 0
}

// Get returns the element at index i without checking i against Len. It is
// the unchecked fast path: i must be in [0, Len()), and callers violating
// that must not rely on any particular failure mode.
func (c *Container[T]) Get(i int) T {
	return c.buf.Slots()[i]
}

// Set stores v at index i without checking i against Len. Same contract as
// Get.
func (c *Container[T]) Set(i int, v T) {
	c.buf.Slots()[i] = v
}

// At returns the element at index i, or an error wrapping ErrIndexOutOfRange
// when i falls outside [0, Len()). At never mutates the container.
func (c *Container[T]) At(i int) (T, error) {
	if i < 0 || i >= c.size {
		var zero T
		return zero, fmt.Errorf("seq: at(%d) with len %d: %w", i, c.size, ErrIndexOutOfRange)
	}
	return c.buf.Slots()[i], nil
}

// Clear drops all live elements. Capacity and slot contents are untouched;
// nothing is deallocated, so Clear is O(1) regardless of the prior length.
func (c *Container[T]) Clear() {
	c.Resize(0)
}

// Resize changes the length to n. Shrinking only moves the length and keeps
// the storage. Growing within capacity zeroes the newly exposed slots, which
// may hold stale values from earlier truncations. Growing past capacity
// reallocates to max(n, 2*Cap()), moves the live elements across and zeroes
// the rest. n < 0 is treated as 0.
func (c *Container[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n <= c.size:
		c.size = n
	case n <= c.Cap():
		clear(c.buf.Slots()[c.size:n])
		c.size = n
	default:
		next := rawbuf.Alloc[T](max(n, 2*c.Cap()))
		copy(next.Slots(), c.buf.Slots()[:c.size])
		c.buf.Swap(&next)
		next.Release()
		c.size = n
	}
}

// ReserveCap grows the capacity to exactly n slots, moving the live elements
// into the new storage. It is a no-op when n <= Cap(). The length never
// changes and no slot beyond Len() becomes live.
func (c *Container[T]) ReserveCap(n int) {
	if n <= c.Cap() {
		return
	}
	next := rawbuf.Alloc[T](n)
	copy(next.Slots(), c.buf.Slots()[:c.size])
	c.buf.Swap(&next)
	next.Release()
}

// PushBack appends v. When the container is full the capacity doubles, or
// becomes 1 from zero, before the element is placed, so a sequence of
// appends costs O(1) amortized per element. Capacity never shrinks.
func (c *Container[T]) PushBack(v T) {
	if c.size == c.Cap() {
		c.ReserveCap(nextCap(c.Cap()))
	}
	c.buf.Slots()[c.size] = v
	c.size++
}

// PopBack removes and returns the last element. The container must not be
// empty; that precondition is not checked. The vacated slot keeps its
// contents until a later operation overwrites it.
func (c *Container[T]) PopBack() T {
	v := c.buf.Slots()[c.size-1]
	c.size--
	return v
}

// Insert places v at index i, shifting the elements at [i, Len()) one slot
// right. i must be in [0, Len()]; inserting at Len() is equivalent to
// PushBack. A full container grows exactly once, by the PushBack rule,
// before the shift. The new element lives at index i afterwards, but growth
// invalidates any previously obtained views. O(Len()-i).
func (c *Container[T]) Insert(i int, v T) {
	if c.size == c.Cap() {
		c.ReserveCap(nextCap(c.Cap()))
	}
	slots := c.buf.Slots()
	copy(slots[i+1:c.size+1], slots[i:c.size])
	slots[i] = v
	c.size++
}

// Erase removes the element at index i, shifting the elements after it one
// slot left to close the gap. i must be in [0, Len()). The element that
// followed the erased one, if any, lives at index i afterwards. O(Len()-i).
func (c *Container[T]) Erase(i int) {
	slots := c.buf.Slots()
	copy(slots[i:c.size-1], slots[i+1:c.size])
	c.size--
}

// Swap exchanges contents with other in O(1): buffer ownership, length and
// capacity all move between the two containers. Swap never allocates and
// never fails.
func (c *Container[T]) Swap(other *Container[T]) {
	c.buf.Swap(&other.buf)
	c.size, other.size = other.size, c.size
}

// Clone returns a deep copy of the observable elements. The copy's capacity
// equals the source's length, not its capacity, so a container that grew far
// beyond its live size clones into a tight allocation.
func (c *Container[T]) Clone() *Container[T] {
	buf := rawbuf.Alloc[T](c.size)
	copy(buf.Slots(), c.buf.Slots()[:c.size])
	return &Container[T]{buf: buf, size: c.size}
}

// Move transfers the buffer into a new container without any element-wise
// work and returns it. The source is left empty but valid: length 0,
// capacity 0, ready for reuse.
func (c *Container[T]) Move() *Container[T] {
	moved := &Container[T]{size: c.size}
	moved.buf.Swap(&c.buf)
	c.size = 0
	return moved
}

// All returns an iterator over the observable elements in index order.
func (c *Container[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.buf.Slots()[:c.size] {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the live window [0, Len()) of the backing storage. It is a
// view, not a copy: writes through it are visible in the container, and any
// capacity-changing operation invalidates it. Callers must not append to it.
func (c *Container[T]) Slice() []T {
	return c.buf.Slots()[:c.size]
}

// nextCap is the append growth rule: 1 from an empty buffer, double
// otherwise.
func nextCap(current int) int {
	if current == 0 {
		return 1
	}
	return 2 * current
}
