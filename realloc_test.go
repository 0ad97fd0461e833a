package uxalloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReallocateNilDelegatesToAllocate(t *testing.T) {
	a := newTestArena()
	p := a.Reallocate(nil, 64)
	require.NotNil(t, p)
	assert.Equal(t, statusAlloc, getStatus(headerOfPayload(uintptr(p)))) //nolint:govet
}

func TestReallocateZeroSizeDelegatesToFree(t *testing.T) {
	a := newTestArena()
	p := a.Allocate(64)
	require.NotNil(t, p)

	addr := headerOfPayload(uintptr(p)) //nolint:govet
	got := a.Reallocate(p, 0)

	assert.Nil(t, got)
	assert.Equal(t, statusFree, getStatus(addr))
}

func TestReallocateUseAfterFreeReturnsNil(t *testing.T) {
	a := newTestArena()
	p := a.Allocate(64)
	require.NotNil(t, p)

	a.Free(p)
	assert.Nil(t, a.Reallocate(p, 32))
}

func TestReallocateSameSizeReturnsSamePointer(t *testing.T) {
	a := newTestArena()
	p := a.Allocate(100)
	require.NotNil(t, p)

	q := a.Reallocate(p, 100)
	assert.Equal(t, p, q)
}

func TestReallocateShrinkSplitsResidual(t *testing.T) {
	a := newTestArena()
	p := a.Allocate(100)
	require.NotNil(t, p)
	addr := headerOfPayload(uintptr(p)) //nolint:govet

	q := a.Reallocate(p, 50)
	require.Equal(t, p, q)
	assert.EqualValues(t, 56, getSize(addr))
	assertRegistryInvariants(t, a)
}

func TestReallocateGrowsTailInPlace(t *testing.T) {
	a, addr := newArenaWithSoleHeapBlock(t, 100)
	p := unsafe.Pointer(payloadOf(addr)) //nolint:govet

	q := a.Reallocate(p, 200)
	require.Equal(t, p, q)
	assert.EqualValues(t, 200, getSize(addr))
	assert.Zero(t, getNext(addr), "growing in place must not introduce a new block")
}

func TestReallocateGrowsByMergingWithFreeNext(t *testing.T) {
	a := newTestArena()
	pa := a.Allocate(100)
	pb := a.Allocate(100)
	require.NotNil(t, pa)
	require.NotNil(t, pb)

	addrA := headerOfPayload(uintptr(pa)) //nolint:govet
	a.Free(pb)

	q := a.Reallocate(pa, 150)
	require.Equal(t, pa, q)
	assert.GreaterOrEqual(t, getSize(addrA), uint64(150))
	assertRegistryInvariants(t, a)
}

func TestReallocateClassSwitchFallsBackToCopy(t *testing.T) {
	a := newTestArena()
	p := a.Allocate(200000) // mapped
	require.NotNil(t, p)

	b := (*byte)(p)
	*b = 0x42

	q := a.Reallocate(p, 16) // shrinking across the class boundary forces a copy
	require.NotNil(t, q)
	assert.NotEqual(t, p, q)
	assert.Equal(t, byte(0x42), *(*byte)(q))

	addr := headerOfPayload(uintptr(q)) //nolint:govet
	assert.Equal(t, statusAlloc, getStatus(addr))
}
