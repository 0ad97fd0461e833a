package uxalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound8(t *testing.T) {
	cases := []struct{ in, want uintptr }{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{100, 104},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, round8(c.in), "round8(%d)", c.in)
	}
}

func TestMetaSizeIsAligned(t *testing.T) {
	assert.Zero(t, metaSize%8, "metaSize=%d must be 8-aligned", metaSize)
	assert.Positive(t, metaSize)
}

func TestHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, 4096)
	addr := sliceAddr(buf)

	setSize(addr, 256)
	setStatus(addr, statusAlloc)
	setNext(addr, addr+1024)

	assert.Equal(t, uint64(256), getSize(addr))
	assert.Equal(t, statusAlloc, getStatus(addr))
	assert.Equal(t, addr+1024, getNext(addr))

	setStatus(addr, statusFree)
	assert.Equal(t, statusFree, getStatus(addr))
}
