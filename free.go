package uxalloc

import "unsafe"

// Free releases the block at p. p == nil is a no-op. Freeing a pointer not
// obtained from this Arena, or double-freeing, is undefined.
func (a *Arena) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	addr := headerOfPayload(uintptr(p)) //nolint:govet
	prevStatus := getStatus(addr)
	setStatus(addr, statusFree)

	if prevStatus != statusMapped {
		a.coalesce()
		a.trace("free: heap block addr=%#x size=%d", addr, getSize(addr))
		return
	}

	// A mapped block only ever passes through FREE for the instant between
	// here and the unmap below; it must never take part in forward
	// coalescing (invariant: MAPPED blocks are never coalesced), so the
	// sweep runs only once the block has been detached, merging any FREE
	// heap blocks its removal has made list-adjacent.
	span := totalSpan(addr)
	a.detach(addr)
	a.coalesce()
	if err := munmapBlock(addr, span); err != nil {
		fatalf("uxalloc: unmap failed for addr=%#x: %v", addr, err)
	}
	a.trace("free: unmapped block addr=%#x span=%d", addr, span)
}

// detach excises addr from the registry, fixing up firstBlock/globalHead
// as needed. Used only for mapped blocks: heap blocks stay in the registry
// as FREE for reuse instead of being removed.
func (a *Arena) detach(addr uintptr) {
	var prev uintptr
	for cur := a.firstBlock; cur != 0; cur = getNext(cur) {
		if cur != addr {
			prev = cur
			continue
		}
		next := getNext(cur)
		if prev == 0 {
			a.firstBlock = next
		} else {
			setNext(prev, next)
		}
		if addr == a.globalHead {
			a.globalHead = prev
		}
		return
	}
}
