package uxalloc

import "github.com/holloway-labs/uxalloc/internal/sysmem"

// largeAllocLimit is LARGE_ALLOC_LIMIT: the heap-vs-mapping routing
// threshold used by Allocate and Reallocate.
const largeAllocLimit = 128 * 1024

// round8 rounds x up to the nearest multiple of 8.
func round8(x uintptr) uintptr {
	return (x + 7) &^ 7
}

func round8u64(x uint64) uint64 {
	return (x + 7) &^ 7
}

// minSplitResidual is round8(1 + META_SIZE): the smallest residual a split
// may leave behind (a header plus at least one aligned byte).
func minSplitResidual() uint64 {
	return uint64(round8(1 + metaSize))
}

// class identifies which backing store a block belongs to.
type class uint8

const (
	classHeap class = iota
	classMapped
)

// routeAllocate chooses heap vs. mapped backing for allocate/reallocate
// requests: heap when the rounded total is strictly below largeAllocLimit.
func routeAllocate(requested uint64) class {
	return routeByThreshold(requested, effectiveLargeAllocLimit())
}

func routeByThreshold(requested uint64, threshold uint64) class {
	total := round8u64(requested + uint64(metaSize))
	if total < threshold {
		return classHeap
	}
	return classMapped
}

// routeZeroAllocate chooses heap vs. mapped backing for zero-allocate
// requests: the threshold is the system page size rather than
// largeAllocLimit, since freshly mapped pages already arrive zero-filled.
func routeZeroAllocate(requested uint64) class {
	return routeByThreshold(requested, uint64(sysmem.PageSize()))
}
