package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/basketmatch/backend/internal/domain"
)

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	t.Run("returns cache miss for unknown key", func(t *testing.T) {
		_, err := c.Get(ctx, "missing")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("round-trips a stored value", func(t *testing.T) {
		if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
			t.Fatalf("Set error: %v", err)
		}

		got, err := c.Get(ctx, "key")
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if got != "value" {
			t.Errorf("Get = %v, want value", got)
		}
	})

	t.Run("preserves concrete types", func(t *testing.T) {
		catalog := []domain.CatalogEntry{
			{Retailer: "tesco", Title: "Heinz Baked Beans 415g", Price: 0.95},
		}
		if err := c.Set(ctx, "catalog:tesco", catalog, time.Minute); err != nil {
			t.Fatalf("Set error: %v", err)
		}

		got, err := c.Get(ctx, "catalog:tesco")
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		typed, ok := got.([]domain.CatalogEntry)
		if !ok {
			t.Fatalf("stored type lost: %T", got)
		}
		if len(typed) != 1 || typed[0].Title != "Heinz Baked Beans 415g" {
			t.Errorf("catalog = %+v", typed)
		}
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		if err := c.Set(ctx, "fleeting", "gone", time.Millisecond); err != nil {
			t.Fatalf("Set error: %v", err)
		}
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "fleeting")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after expiry", err)
		}
	})
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := c.Get(ctx, "key"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("error = %v, want ErrCacheMiss after delete", err)
	}
}

func TestMemoryCacheExists(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	exists, err := c.Exists(ctx, "missing")
	if err != nil || exists {
		t.Errorf("Exists = %v %v, want false nil", exists, err)
	}

	if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	exists, err = c.Exists(ctx, "key")
	if err != nil || !exists {
		t.Errorf("Exists = %v %v, want true nil", exists, err)
	}

	if err := c.Set(ctx, "fleeting", "gone", time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	exists, err = c.Exists(ctx, "fleeting")
	if err != nil || exists {
		t.Errorf("Exists = %v %v, want false nil after expiry", exists, err)
	}
}

func TestMemoryCacheSizeAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	for i := 0; i < 5; i++ {
		if err := c.Set(ctx, fmt.Sprintf("key-%d", i), i, time.Minute); err != nil {
			t.Fatalf("Set error: %v", err)
		}
	}
	if c.Size() != 5 {
		t.Errorf("Size = %d, want 5", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size = %d, want 0 after Clear", c.Size())
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%5)
			_ = c.Set(ctx, key, n, time.Minute)
			_, _ = c.Get(ctx, key)
			_, _ = c.Exists(ctx, key)
		}(i)
	}
	wg.Wait()

	if c.Size() != 5 {
		t.Errorf("Size = %d, want 5", c.Size())
	}
}
