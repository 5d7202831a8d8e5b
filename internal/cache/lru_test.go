package cache

import "testing"

func TestLRUPutGet(t *testing.T) {
	c := NewLRU[string, int](4)

	c.Put("a", 1)
	c.Put("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v, want 1, true", v, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get(missing) ok = true, want false")
	}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int, int](2)

	c.Put(1, 1)
	c.Put(2, 2)
	c.Get(1) // touch 1, making 2 the least recently used
	c.Put(3, 3)

	if _, ok := c.Get(2); ok {
		t.Fatal("expected key 2 to be evicted")
	}

	if _, ok := c.Get(1); !ok {
		t.Fatal("expected key 1 to survive eviction")
	}

	if _, ok := c.Get(3); !ok {
		t.Fatal("expected key 3 to be present")
	}
}

func TestLRUDefaultCapacity(t *testing.T) {
	c := NewLRU[int, int](0)

	for i := 0; i < DefaultCapacity+10; i++ {
		c.Put(i, i)
	}

	if c.Len() != DefaultCapacity {
		t.Fatalf("Len() = %d, want %d", c.Len(), DefaultCapacity)
	}
}

func TestLRUPutReplacesExisting(t *testing.T) {
	c := NewLRU[string, int](4)

	c.Put("a", 1)
	c.Put("a", 2)

	if v, _ := c.Get("a"); v != 2 {
		t.Fatalf("Get(a) = %v, want 2", v)
	}

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestLRUClear(t *testing.T) {
	c := NewLRU[string, int](4)
	c.Put("a", 1)
	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected empty cache after Clear")
	}
}
