package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDAllocator(t *testing.T) {
	a := newIDAllocator()

	assert.Equal(t, uint(1), a.next("notices", nil), "empty collection starts at 1")
	assert.Equal(t, uint(10), a.next("events", []uint{1, 5, 9}), "gapped ids do not confuse max")

	// The high-water mark survives the disappearance of the records that
	// produced it.
	assert.Equal(t, uint(11), a.next("events", []uint{2}))

	// Collections are tracked independently.
	assert.Equal(t, uint(2), a.next("notices", []uint{1}))
}
