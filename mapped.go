package uxalloc

import "github.com/holloway-labs/uxalloc/internal/sysmem"

func munmapBlock(addr uintptr, span uint64) error {
	return sysmem.Munmap(addr, int(span))
}
