package uxalloc

import "sync"

var (
	defaultOnce  sync.Once
	defaultArena *Arena
)

// Default returns the process-wide Arena, constructed lazily on first use
// and never torn down. Most callers that just want drop-in malloc/free
// semantics without managing their own Arena value should use this.
func Default() *Arena {
	defaultOnce.Do(func() {
		defaultArena = NewArena()
	})
	return defaultArena
}
