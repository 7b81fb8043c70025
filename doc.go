// Package seq implements a generic resizable sequence container backed by a
// single contiguous storage block. The container separates length from
// capacity: length counts the live elements, capacity counts the allocated
// slots, and length never exceeds capacity.
//
// Storage is owned through a rawbuf.Buffer and grows by doubling, so a run
// of appends costs amortized O(1) per element. Growth always builds the new
// block before touching the old one: if allocation fails mid-operation the
// container is left exactly as it was. Shrinking operations only move the
// length, never the allocation, so freed slots keep their old values until
// overwritten.
//
// Key features:
//   - Generic implementation supporting any element type
//   - Amortized O(1) append with explicit capacity control via Reserve
//   - Checked access through At alongside unchecked Get and Set
//   - O(1) Swap and Move that exchange storage without copying elements
//   - Lexicographic ordering through the free Compare and Equal functions
//
// Basic usage:
//
//	// Build a sequence and grow it
//	s := seq.New(1, 2, 3)
//	s.PushBack(4)
//
//	// Preallocate when the final size is known
//	big := seq.NewReserved[int](seq.Reserve(1024))
//	for i := 0; i < 1024; i++ {
//	    big.PushBack(i) // never reallocates
//	}
//
//	// Checked access returns an error instead of panicking
//	if v, err := s.At(2); err == nil {
//	    fmt.Println(v)
//	}
//
//	// Iterate over the live elements
//	for v := range s.All() {
//	    fmt.Println(v)
//	}
//
// Get, Set, PopBack, Insert and Erase do not validate their indices; they
// are the fast path for callers that already know the index is live. At is
// the checked counterpart and reports ErrIndexOutOfRange for anything
// outside [0, Len()).
package seq
