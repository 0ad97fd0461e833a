//go:build unix

package sysmem

import "unsafe"

// unsafePtr returns the address of a mapped byte slice's backing storage.
func unsafePtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// bytesAt reconstructs the slice view unix.Munmap expects from a raw
// address and length. Safe only for regions this package itself mapped.
func bytesAt(addr uintptr, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
}
