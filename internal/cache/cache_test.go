package cache

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	c := New[int, string](0)
	calls := 0
	create := func() string {
		calls++
		return "v"
	}

	if got := c.GetOrCreate(1, create); got != "v" {
		t.Errorf("GetOrCreate() = %q, want %q", got, "v")
	}
	c.GetOrCreate(1, create)
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	if v, ok := c.Get(1); !ok || v != "v" {
		t.Errorf("Get(1) = %q, %v, want %q, true", v, ok, "v")
	}
	if _, ok := c.Get(2); ok {
		t.Error("Get(2) should miss")
	}
}

func TestEviction(t *testing.T) {
	c := New[int, int](8)
	for i := range 8 {
		c.GetOrCreate(i, func() int { return i })
	}
	// Touch key 0 so it is the most recently used.
	c.Get(0)

	c.GetOrCreate(100, func() int { return 100 })
	if n := c.Len(); n != 6 {
		t.Errorf("Len() = %d, want 6", n)
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used key 0 was evicted")
	}
	if _, ok := c.Get(100); !ok {
		t.Error("new key 100 was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest key 1 should be evicted")
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[string, int](0)
	var calls atomic.Int32

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrCreate("k", func() int {
				calls.Add(1)
				return 42
			})
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("create called %d times, want 1", n)
	}
}

func BenchmarkGetOrCreateHit(b *testing.B) {
	c := New[int, int](0)
	c.GetOrCreate(1, func() int { return 1 })
	for b.Loop() {
		c.GetOrCreate(1, func() int { return 1 })
	}
}
