package uxalloc

import (
	"os"
	"strconv"
)

// logAlloc enables verbose allocator tracing to stderr, opted into via
// environment variable rather than a constructor argument so it can be
// flipped without touching call sites.
var logAlloc = os.Getenv("UXALLOC_LOG") != ""

// largeAllocLimitOverride lets tests exercise the size-class boundary
// without allocating real 128 KiB regions. Zero means "use the default".
var largeAllocLimitOverride = readSizeClassOverride()

func readSizeClassOverride() uint64 {
	v := os.Getenv("UXALLOC_SIZE_CLASS_LIMIT")
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func effectiveLargeAllocLimit() uint64 {
	if largeAllocLimitOverride != 0 {
		return largeAllocLimitOverride
	}
	return largeAllocLimit
}
