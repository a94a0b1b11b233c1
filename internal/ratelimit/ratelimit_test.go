package ratelimit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow_WithinBurst(t *testing.T) {
	krl := New(1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, krl.Allow("client-a"), "request %d", i)
	}
	assert.False(t, krl.Allow("client-a"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl := New(1, 1)

	assert.True(t, krl.Allow("client-a"))
	assert.False(t, krl.Allow("client-a"))

	// A different key has its own bucket.
	assert.True(t, krl.Allow("client-b"))
}

func TestAllow_Concurrent(t *testing.T) {
	krl := New(1000, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				krl.Allow("shared")
			}
		}()
	}
	wg.Wait()

	krl.mu.RLock()
	defer krl.mu.RUnlock()
	assert.Len(t, krl.limiters, 1)
}
