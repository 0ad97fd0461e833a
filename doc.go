// Package uxalloc implements a general-purpose dynamic memory allocator
// for a single-threaded process, backed by two kernel memory sources: a
// contiguous program break grown by a break-moving syscall, and anonymous
// mappings obtained per large block.
//
// # Overview
//
// An Arena exposes four operations:
//
//   - Allocate(size): an 8-aligned pointer to size bytes of uninitialized
//     memory, or nil for a zero-sized request.
//   - ZeroAllocate(n, size): a pointer to n*size bytes of zero-filled
//     memory, or nil if n or size is zero, or if n*size would overflow.
//   - Reallocate(p, size): resizes the block at p, growing or shrinking in
//     place where possible and falling back to allocate-copy-free
//     otherwise. size == 0 behaves like Free; p == nil behaves like
//     Allocate.
//   - Free(p): releases the block at p. p == nil is a no-op. Freeing an
//     already-free block, or any pointer not obtained from this Arena, is
//     undefined.
//
// # Implementation
//
// Every block the Arena has ever obtained is tracked by an intrusive
// singly-linked registry: the header recording a block's size, status and
// next-pointer lives at the start of the block itself, so there is no
// second allocator for metadata. Requests below a 128 KiB threshold are
// served from the program break; requests at or above it get their own
// anonymous mapping (ZeroAllocate uses the system page size as its
// threshold instead). Free blocks on the heap are found by a best-fit linear
// scan, split when the residual is large enough to be useful, and
// coalesced with their neighbors on every free. See header.go, router.go,
// alloc.go, free.go, realloc.go and split_coalesce.go for the engine
// itself, and internal/sysmem for the kernel-facing backing sources.
//
// # Usage Example
//
//	p := uxalloc.Default().Allocate(128)
//	defer uxalloc.Default().Free(p)
//
// # Thread Safety
//
// An Arena is not safe for concurrent use — see LockingArena (locking.go)
// for a trivial mutex-wrapped variant when that is actually needed.
package uxalloc
