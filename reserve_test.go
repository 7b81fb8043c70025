package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/susupernovaa/seq"
)

func TestReserve(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "positive", n: 64, want: 64},
		{name: "zero", n: 0, want: 0},
		{name: "negative clamps", n: -10, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, seq.Reserve(tc.n).Cap())
		})
	}
}

func TestNewReserved(t *testing.T) {
	s := seq.NewReserved[int](seq.Reserve(10))

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 10, s.Cap())
}

func TestNewReservedZeroHint(t *testing.T) {
	s := seq.NewReserved[int](seq.Reserve(0))

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Cap())
}

func TestNewReservedPushWithinHint(t *testing.T) {
	const hint = 16
	s := seq.NewReserved[int](seq.Reserve(hint))

	s.PushBack(0)
	first := &s.Slice()[0]

	for i := 1; i < hint; i++ {
		s.PushBack(i)
		require.Equal(t, hint, s.Cap())
	}

	// The hinted allocation served every append.
	assert.Same(t, first, &s.Slice()[0])

	s.PushBack(hint)
	assert.Equal(t, 2*hint, s.Cap())
}

func TestReservedPushNeverAllocates(t *testing.T) {
	s := seq.NewReserved[int](seq.Reserve(1 << 16))

	allocs := testing.AllocsPerRun(100, func() {
		s.PushBack(1)
	})
	assert.Zero(t, allocs)
}
