package uxalloc

import (
	"math"

	"github.com/holloway-labs/uxalloc/internal/sysmem"
)

// Arena holds the process-wide allocator state: the block registry and the
// program-break cursor. The zero value is not ready for use; construct one
// with NewArena, or use the process-wide Default().
type Arena struct {
	breaker sysmem.Breaker

	globalHead uintptr // most recently created block; always the registry's tail
	firstBlock uintptr // head of the list used for free-list traversal/coalescing
	firstAlloc bool    // true once the one-shot heap preallocation has happened
}

// NewArena constructs an empty Arena. Its registry and program-break state
// are initialized lazily on first use, never torn down.
func NewArena() *Arena {
	return &Arena{}
}

// handleAlloc is the shared entry point behind Allocate and ZeroAllocate:
// given a requested payload size and the size class the caller already
// routed it to (see router.go), it returns the address of a block's header
// ready to hand out (status ALLOC, or MAPPED for a mapped block).
func (a *Arena) handleAlloc(reqSize uint64, cls class) uintptr {
	if a.globalHead == 0 {
		addr, preallocated, err := a.createBlock(reqSize, cls)
		if err != nil {
			fatalf("uxalloc: could not create initial block: %v", err)
		}
		if a.firstBlock != 0 {
			setNext(addr, a.firstBlock)
		}
		a.firstBlock = addr
		a.globalHead = addr
		if preallocated {
			a.splitPreallocSurplus(addr, round8u64(reqSize))
		}
		a.trace("handleAlloc: first block addr=%#x size=%d", addr, getSize(addr))
		return addr
	}

	a.coalesce()
	need := round8u64(reqSize)

	// Only heap-class requests reuse or grow existing heap blocks; a
	// mapped-class request always gets a fresh mapping below.
	if best := a.bestFit(need); cls == classHeap && best != 0 {
		a.trySplit(best, need)
		setStatus(best, statusAlloc)
		a.trace("handleAlloc: reused free block addr=%#x size=%d", best, getSize(best))
		return best
	}

	if tail := a.globalHead; cls == classHeap && getStatus(tail) == statusFree {
		expand := need - getSize(tail)
		if _, err := a.breaker.Grow(uintptr(expand)); err != nil {
			fatalf("uxalloc: could not grow tail block in place: %v", err)
		}
		setSize(tail, need)
		setStatus(tail, statusAlloc)
		a.trace("handleAlloc: grew tail block addr=%#x to size=%d", tail, need)
		return tail
	}

	addr, preallocated, err := a.createBlock(reqSize, cls)
	if err != nil {
		fatalf("uxalloc: could not create new block: %v", err)
	}
	setNext(a.globalHead, addr)
	a.globalHead = addr
	if preallocated {
		// The one-shot heap preallocation can be consumed by a later
		// creation, not just the very first block ever, if every
		// allocation before this one happened to be mapped. Splitting
		// here keeps that surplus tracked too, the same as the
		// registry-empty case above.
		a.splitPreallocSurplus(addr, round8u64(reqSize))
	}
	a.trace("handleAlloc: appended new block addr=%#x size=%d", addr, getSize(addr))
	return addr
}

// createBlock obtains fresh backing for a request, per the class the
// caller already routed it to via routeAllocate/routeZeroAllocate. The
// returned block is fully initialized (size, status, next=none) but not
// yet linked into the registry — the caller does that. preallocated
// reports whether this call consumed the one-shot 128 KiB heap
// preallocation, which the caller must then carve down via
// splitPreallocSurplus.
func (a *Arena) createBlock(reqSize uint64, cls class) (addr uintptr, preallocated bool, err error) {
	total := round8u64(reqSize + uint64(metaSize))

	if cls == classHeap {
		var base uintptr
		if !a.firstAlloc {
			base, err = a.breaker.Grow(uintptr(effectiveLargeAllocLimit()))
			if err != nil {
				return 0, false, err
			}
			a.firstAlloc = true
			preallocated = true
		} else {
			base, err = a.breaker.Grow(uintptr(total))
			if err != nil {
				return 0, false, err
			}
		}
		setStatus(base, statusAlloc)
		setSize(base, round8u64(reqSize))
		setNext(base, 0)
		return base, preallocated, nil
	}

	base, err := sysmem.Mmap(int(total))
	if err != nil {
		return 0, false, err
	}
	setStatus(base, statusMapped)
	setSize(base, round8u64(reqSize))
	setNext(base, 0)
	return base, false, nil
}

// splitPreallocSurplus carves the unused tail of a fresh 128 KiB
// preallocation into a FREE remainder block, so the surplus is tracked by
// the registry immediately rather than left implicitly "beyond tail".
func (a *Arena) splitPreallocSurplus(addr uintptr, reqRounded uint64) {
	full := effectiveLargeAllocLimit() - uint64(metaSize)
	setSize(addr, full)
	if !a.trySplit(addr, reqRounded) {
		setSize(addr, reqRounded)
	}
}

// bestFit scans the registry for the smallest FREE block whose size is at
// least need, breaking ties in favor of the first one encountered.
func (a *Arena) bestFit(need uint64) uintptr {
	var best uintptr
	bestSize := uint64(math.MaxUint64)
	for cur := a.firstBlock; cur != 0; cur = getNext(cur) {
		if getStatus(cur) != statusFree {
			continue
		}
		sz := getSize(cur)
		if sz >= need && sz < bestSize {
			best = cur
			bestSize = sz
		}
	}
	return best
}
