package uxalloc

import "unsafe"

// Reallocate resizes the block at p to size bytes. p == nil behaves like
// Allocate(size); size == 0 behaves like Free(p) and returns nil. A use
// after free (p currently FREE) also returns nil without changing state.
// Otherwise the block is shrunk or grown in place when possible, and
// falls back to allocate-copy-free when not.
func (a *Arena) Reallocate(p unsafe.Pointer, size int) unsafe.Pointer {
	if p == nil {
		return a.Allocate(size)
	}
	if size == 0 {
		a.Free(p)
		return nil
	}

	addr := headerOfPayload(uintptr(p)) //nolint:govet
	if getStatus(addr) == statusFree {
		return nil
	}

	current := getSize(addr)
	adjusted := round8u64(uint64(size))
	switching := classSwitchNeeded(addr, adjusted)
	mapped := getStatus(addr) == statusMapped

	if current >= adjusted {
		if !switching {
			// A mapped block is never split; it keeps its whole mapping.
			if !mapped {
				a.trySplit(addr, adjusted)
				a.coalesce()
			}
			a.trace("reallocate: shrank in place addr=%#x size=%d", addr, adjusted)
			return p
		}
		if current == adjusted {
			return p
		}
		// current > adjusted but a class switch is required: fall through
		// to the allocate-copy-free path below.
	} else if !switching && !mapped {
		// A class switch, or growth of a mapped block, always takes the
		// allocate-copy-free path below instead.
		if getNext(addr) == 0 && getStatus(addr) == statusAlloc && routeAllocate(adjusted) == classHeap {
			expand := adjusted - current
			if _, err := a.breaker.Grow(uintptr(expand)); err != nil {
				fatalf("uxalloc: could not grow tail block during reallocate: %v", err)
			}
			setSize(addr, adjusted)
			a.trace("reallocate: grew tail block in place addr=%#x size=%d", addr, adjusted)
			return p
		}

		a.coalesce()
		if next := getNext(addr); next != 0 && getStatus(next) == statusFree &&
			current+getSize(next)+uint64(metaSize) >= adjusted {
			setSize(addr, current+getSize(next)+uint64(metaSize))
			setNext(addr, getNext(next))
			if next == a.globalHead {
				a.globalHead = addr
			}
			if getSize(addr) >= adjusted {
				a.trySplit(addr, adjusted)
				a.trace("reallocate: grew by merge-with-next addr=%#x size=%d", addr, adjusted)
				return p
			}
		}
	}

	newPtr := a.Allocate(size)
	if newPtr == nil {
		fatalf("uxalloc: allocate failed during reallocate fallback copy")
	}
	copySize := current
	if adjusted < copySize {
		copySize = adjusted
	}
	copyBytes(newPtr, p, uintptr(copySize))
	a.Free(p)
	a.trace("reallocate: fallback copy old=%#x new=%#x size=%d", addr, headerOfPayload(uintptr(newPtr)), adjusted)
	return newPtr
}

// classSwitchNeeded reports whether moving to size adjusted would cross
// the heap/mapped boundary from addr's current backing.
func classSwitchNeeded(addr uintptr, adjusted uint64) bool {
	currentClass := classHeap
	if getStatus(addr) == statusMapped {
		currentClass = classMapped
	}
	return routeAllocate(adjusted) != currentClass
}

func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	d := unsafe.Slice((*byte)(dst), int(n)) //nolint:govet
	s := unsafe.Slice((*byte)(src), int(n)) //nolint:govet
	copy(d, s)
}
