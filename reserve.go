package seq

// Reservation is a capacity hint produced by Reserve and consumed by
// NewReserved. Keeping the hint as its own type lets a capacity-only
// constructor coexist with New's value-list form without the two int
// signatures colliding.
type Reservation struct {
	capacity int
}

// Cap returns the hinted capacity.
func (r Reservation) Cap() int {
	return r.capacity
}

// Reserve returns a hint requesting capacity for n elements. n < 0 is
// treated as 0. Reserve allocates nothing on its own.
func Reserve(n int) Reservation {
	if n < 0 {
		n = 0
	}
	return Reservation{capacity: n}
}

// NewReserved returns an empty container whose storage is preallocated to
// the hinted capacity, so the first r.Cap() appends never reallocate.
func NewReserved[T any](r Reservation) *Container[T] {
	c := &Container[T]{}
	c.ReserveCap(r.capacity)
	return c
}
