package uxalloc

import "unsafe"

// Allocate returns an 8-aligned pointer to size bytes of uninitialized
// memory, or nil if size is zero.
func (a *Arena) Allocate(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	req := uint64(size)
	addr := a.handleAlloc(req, routeAllocate(req))
	return unsafe.Pointer(payloadOf(addr)) //nolint:govet
}

// ZeroAllocate returns a pointer to n*size bytes of zero-filled memory, or
// nil if n or size is zero, or if n*size would overflow a uint64.
func (a *Arena) ZeroAllocate(n, size int) unsafe.Pointer {
	if n <= 0 || size <= 0 {
		return nil
	}
	nu, su := uint64(n), uint64(size)
	if su != 0 && nu > (^uint64(0))/su {
		return nil
	}
	full := nu * su

	addr := a.handleAlloc(full, routeZeroAllocate(full))
	p := payloadOf(addr)
	zeroFill(p, full)
	return unsafe.Pointer(p) //nolint:govet
}

func zeroFill(addr uintptr, n uint64) {
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(n)) //nolint:govet
	for i := range b {
		b[i] = 0
	}
}
