package posterart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testURI = "https://example.com/afro.jpg"

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}
	return cache
}

func TestNewCache_CustomDir(t *testing.T) {
	base := t.TempDir()
	cache, err := NewCache(base)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	want := filepath.Join(base, "marquee", "posters")
	if cache.Dir() != want {
		t.Errorf("Dir() = %q, want %q", cache.Dir(), want)
	}
	if info, err := os.Stat(want); err != nil || !info.IsDir() {
		t.Errorf("cache directory not created: %v", err)
	}
}

func TestCache_PutAndGet(t *testing.T) {
	cache := newTestCache(t)
	data := []byte("png data")

	if err := cache.Put(testURI, 80, 120, data); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if got := cache.Get(testURI, 80, 120); !bytes.Equal(got, data) {
		t.Errorf("Get() = %q, want %q", got, data)
	}
}

func TestCache_Get_Misses(t *testing.T) {
	cache := newTestCache(t)
	_ = cache.Put(testURI, 80, 120, []byte("data"))

	tests := []struct {
		name          string
		uri           string
		width, height int
	}{
		{"unknown uri", "https://example.com/other.jpg", 80, 120},
		{"different size", testURI, 160, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cache.Get(tt.uri, tt.width, tt.height); got != nil {
				t.Errorf("Get() = %q, want nil", got)
			}
		})
	}
}

func TestCache_Put_EmptyData(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.Put(testURI, 8, 8, nil); err == nil {
		t.Error("Put() with no data should fail")
	}
}

func TestCache_NilIsNoop(t *testing.T) {
	var cache *Cache
	if cache.Get(testURI, 8, 8) != nil {
		t.Error("nil cache Get should return nil")
	}
	if err := cache.Put(testURI, 8, 8, []byte("x")); err != nil {
		t.Errorf("nil cache Put error: %v", err)
	}
	if n, err := cache.Prune(time.Hour); n != 0 || err != nil {
		t.Errorf("nil cache Prune = %d, %v", n, err)
	}
}

func TestCache_Clear(t *testing.T) {
	cache := newTestCache(t)
	for _, uri := range []string{"a.png", "b.png", "c.png"} {
		_ = cache.Put(uri, 8, 8, []byte(uri))
	}

	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	for _, uri := range []string{"a.png", "b.png", "c.png"} {
		if cache.Get(uri, 8, 8) != nil {
			t.Errorf("%s should not exist after clear", uri)
		}
	}
}

func TestCache_Prune(t *testing.T) {
	cache := newTestCache(t)
	_ = cache.Put("old.png", 8, 8, []byte("old"))
	_ = cache.Put("new.png", 8, 8, []byte("new"))

	old := time.Now().Add(-40 * 24 * time.Hour)
	path := filepath.Join(cache.Dir(), cache.cacheKey("old.png", 8, 8)+".png")
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}

	n, err := cache.Prune(DefaultMaxAge)
	if err != nil {
		t.Fatalf("Prune() error: %v", err)
	}
	if n != 1 {
		t.Errorf("Prune() removed %d, want 1", n)
	}
	if cache.Get("old.png", 8, 8) != nil {
		t.Error("old entry should be pruned")
	}
	if cache.Get("new.png", 8, 8) == nil {
		t.Error("recent entry should be kept")
	}
}

func TestCache_Get_UpdatesMtime(t *testing.T) {
	cache := newTestCache(t)
	_ = cache.Put(testURI, 8, 8, []byte("data"))

	path := filepath.Join(cache.Dir(), cache.cacheKey(testURI, 8, 8)+".png")
	old := time.Now().Add(-24 * time.Hour)
	_ = os.Chtimes(path, old, old)

	cache.Get(testURI, 8, 8)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if time.Since(info.ModTime()) > time.Hour {
		t.Error("Get() should refresh the entry's mtime")
	}
}

func TestCache_cacheKey(t *testing.T) {
	cache := newTestCache(t)

	a := cache.cacheKey(testURI, 8, 16)
	if a != cache.cacheKey(testURI, 8, 16) {
		t.Error("cacheKey should be deterministic")
	}
	if a == cache.cacheKey(testURI, 16, 8) {
		t.Error("cacheKey should include dimensions")
	}
	if len(a) != 64 || strings.Trim(a, "0123456789abcdef") != "" {
		t.Errorf("cacheKey = %q, want 64 hex characters", a)
	}
}

func TestDefaultMaxAge(t *testing.T) {
	if DefaultMaxAge != 30*24*time.Hour {
		t.Errorf("DefaultMaxAge = %v, want 30 days", DefaultMaxAge)
	}
}
