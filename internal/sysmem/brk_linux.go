//go:build linux

package sysmem

import "golang.org/x/sys/unix"

// Breaker tracks the process program break and grows it on request.
// golang.org/x/sys/unix has no Brk wrapper (it is rarely needed by
// ordinary Go programs, which let the runtime manage the heap itself),
// so the raw syscall number is invoked directly via unix.Syscall.
type Breaker struct {
	current     uintptr
	initialized bool
}

func sysBrk(addr uintptr) uintptr {
	r, _, _ := unix.Syscall(unix.SYS_BRK, addr, 0, 0)
	return r
}

func (b *Breaker) init() {
	if b.initialized {
		return
	}
	b.current = sysBrk(0)
	b.initialized = true
}

// Grow extends the break by delta bytes and returns the break's address
// before the extension, mirroring sbrk(2)'s historical return value.
func (b *Breaker) Grow(delta uintptr) (uintptr, error) {
	b.init()
	old := b.current
	want := old + delta
	got := sysBrk(want)
	if got < want {
		return 0, ErrBreakFailed
	}
	b.current = got
	return old, nil
}
