package uxalloc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockingArenaConcurrentAllocateFree(t *testing.T) {
	l := NewArena().Locking()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				p := l.Allocate(64)
				if p != nil {
					l.Free(p)
				}
			}
		}()
	}
	wg.Wait()

	assertRegistryInvariants(t, l.arena)
}

func TestDefaultReturnsSameArena(t *testing.T) {
	a := Default()
	b := Default()
	assert.Same(t, a, b)
}
