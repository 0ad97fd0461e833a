package uxalloc

import (
	"sync"
	"unsafe"
)

// LockingArena wraps an Arena with a single mutex around each public
// operation. The engine itself assumes serial access (see doc.go); this is
// the trivial opt-in wrapper for callers that do need cross-goroutine use.
type LockingArena struct {
	mu    sync.Mutex
	arena *Arena
}

// Locking wraps a with a mutex, serializing every public operation.
func (a *Arena) Locking() *LockingArena {
	return &LockingArena{arena: a}
}

func (l *LockingArena) Allocate(size int) unsafe.Pointer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.arena.Allocate(size)
}

func (l *LockingArena) ZeroAllocate(n, size int) unsafe.Pointer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.arena.ZeroAllocate(n, size)
}

func (l *LockingArena) Reallocate(p unsafe.Pointer, size int) unsafe.Pointer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.arena.Reallocate(p, size)
}

func (l *LockingArena) Free(p unsafe.Pointer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.arena.Free(p)
}
