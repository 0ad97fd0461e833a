package uxalloc

import "fmt"

// fatalf aborts the process with a diagnostic. Kernel-backing failures are
// unrecoverable: the address-space invariants this engine depends on can no
// longer be trusted, so there is nothing to recover into.
func fatalf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
