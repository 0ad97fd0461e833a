//go:build unix

package sysmem

import "golang.org/x/sys/unix"

// Mmap requests a fresh, private, anonymous, read-write mapping of length
// bytes and returns its base address.
func Mmap(length int) (addr uintptr, err error) {
	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return 0, ErrMapFailed
	}
	return uintptr(unsafePtr(b)), nil
}

// Munmap releases a region previously obtained from Mmap or from the
// break-fallback's reservation.
func Munmap(addr uintptr, length int) error {
	b := bytesAt(addr, length)
	if err := unix.Munmap(b); err != nil {
		return ErrUnmapFailed
	}
	return nil
}
