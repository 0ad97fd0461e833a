package sysmem

import "golang.org/x/sys/unix"

// PageSize returns the system page size, the configuration syscall spec
// names as the zero-allocate routing threshold.
func PageSize() int {
	return unix.Getpagesize()
}
