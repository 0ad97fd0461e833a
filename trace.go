package uxalloc

import (
	"fmt"
	"os"
)

// debugAlloc is a compile-time gate for the tracing calls themselves. It is
// set to true so that UXALLOC_LOG, the runtime gate, takes effect; setting
// it to false compiles tracing out entirely.
const debugAlloc = true

func (a *Arena) trace(format string, args ...any) {
	if !debugAlloc || !logAlloc {
		return
	}
	fmt.Fprintf(os.Stderr, "uxalloc: "+format+"\n", args...)
}
