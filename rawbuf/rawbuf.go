// Package rawbuf provides the raw contiguous storage block consumed by the
// seq container: a single owned allocation of element slots with O(1) swap
// and explicit release, and no notion of which slots hold live data.
package rawbuf

// Buffer owns one contiguous allocation of element slots. The zero value owns
// no storage. Ownership is exclusive: a Buffer is never shared, only swapped
// or released.
type Buffer[T any] struct {
	slots []T
}

// Alloc obtains ownership of n zero-valued slots. n <= 0 yields a buffer with
// no storage. Allocation failure surfaces as a runtime panic from the
// allocator and is not handled here.
func Alloc[T any](n int) Buffer[T] {
	if n <= 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{slots: make([]T, n)}
}

// Slots returns the full slot array. The returned slice is the storage
// itself, not a copy; it stays valid while the buffer is alive and has not
// been swapped away or released.
func (b *Buffer[T]) Slots() []T {
	return b.slots
}

// Cap returns the number of slots owned by the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Swap exchanges storage ownership between b and other in O(1). It never
// allocates and never fails.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release drops the buffer's storage, returning it to the zero value. Slices
// previously obtained from Slots keep the old storage alive until they are
// themselves unreachable.
func (b *Buffer[T]) Release() {
	b.slots = nil
}
