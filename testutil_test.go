package uxalloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// sliceAddr returns the address of a Go-heap byte slice's backing array,
// for unit tests that exercise the raw header codec without going through
// a real kernel-backed region.
func sliceAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0])) //nolint:govet
}

// walkRegistry returns the addresses of every block in the registry, in
// registry order starting from firstBlock.
func walkRegistry(a *Arena) []uintptr {
	var out []uintptr
	for cur := a.firstBlock; cur != 0; cur = getNext(cur) {
		out = append(out, cur)
	}
	return out
}

// assertRegistryInvariants checks that the registry stays a cycle-free,
// 8-aligned list with no two adjacent FREE blocks, which must hold at every
// public-API quiescence point.
func assertRegistryInvariants(t *testing.T, a *Arena) {
	t.Helper()

	seen := make(map[uintptr]bool)
	prevFree := false
	for _, addr := range walkRegistry(a) {
		require.False(t, seen[addr], "registry cycle detected at addr=%#x", addr)
		seen[addr] = true

		require.Zero(t, addr%8, "block addr=%#x is not 8-aligned", addr)
		require.Zero(t, getSize(addr)%8, "block addr=%#x size=%d is not a multiple of 8", addr, getSize(addr))

		isFree := getStatus(addr) == statusFree
		require.False(t, prevFree && isFree, "two consecutive FREE blocks at addr=%#x", addr)
		prevFree = isFree
	}
}

// newTestArena returns a fresh, unshared Arena for a single test.
func newTestArena() *Arena {
	return NewArena()
}

// newArenaWithSoleHeapBlock builds an Arena whose registry contains exactly
// one ALLOC heap block of the given payload size, with no FREE remainder
// after it — i.e. the block is genuinely the registry tail. This sets up
// the "grow tail in place" precondition directly, since reaching it through
// the public API alone is masked by this Arena's explicit split of the
// one-shot 128 KiB preallocation surplus.
func newArenaWithSoleHeapBlock(t *testing.T, payloadSize uint64) (*Arena, uintptr) {
	t.Helper()
	a := newTestArena()

	total := uintptr(round8u64(payloadSize + uint64(metaSize)))
	addr, err := a.breaker.Grow(total)
	require.NoError(t, err)

	setSize(addr, round8u64(payloadSize))
	setStatus(addr, statusAlloc)
	setNext(addr, 0)

	a.firstAlloc = true
	a.firstBlock = addr
	a.globalHead = addr

	return a, addr
}
