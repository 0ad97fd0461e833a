//go:build !linux

package sysmem

// reserveSize bounds the virtual address range reserved to simulate a
// program break on platforms without a stable user-space brk(2), such as
// Darwin. Pages within it fault in lazily, so reserving it costs nothing
// until the break is actually grown into and touched.
const reserveSize = 1 << 30 // 1 GiB of virtual address space

// Breaker simulates a monotonically growing program break by bumping a
// cursor within one large upfront anonymous reservation, rather than
// calling a real break-moving syscall repeatedly.
type Breaker struct {
	base        uintptr
	current     uintptr
	limit       uintptr
	initialized bool
}

func (b *Breaker) init() error {
	if b.initialized {
		return nil
	}
	addr, err := Mmap(reserveSize)
	if err != nil {
		return err
	}
	b.base = addr
	b.current = addr
	b.limit = addr + reserveSize
	b.initialized = true
	return nil
}

// Grow extends the simulated break by delta bytes and returns the address
// of the break before the extension.
func (b *Breaker) Grow(delta uintptr) (uintptr, error) {
	if err := b.init(); err != nil {
		return 0, err
	}
	old := b.current
	want := old + delta
	if want > b.limit {
		return 0, ErrBreakFailed
	}
	b.current = want
	return old, nil
}
