package posterart

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const cacheDirName = "marquee/posters"

// DefaultMaxAge is how long an unused cached image is kept.
const DefaultMaxAge = 30 * 24 * time.Hour

// Cache stores resized poster images as PNG files on disk.
type Cache struct {
	dir string
}

// NewCache creates a cache under baseDir, or under the XDG cache directory
// when baseDir is empty.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// cacheKey identifies an image source at a pixel size.
func (c *Cache) cacheKey(uri string, width, height int) string {
	hash := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%d", uri, width, height))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(uri string, width, height int) string {
	return filepath.Join(c.dir, c.cacheKey(uri, width, height)+".png")
}

// Get returns cached PNG data, or nil when missing. A hit refreshes the
// entry's age.
func (c *Cache) Get(uri string, width, height int) []byte {
	if c == nil {
		return nil
	}

	path := c.path(uri, width, height)
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}

	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data.
func (c *Cache) Put(uri string, width, height int, data []byte) error {
	if c == nil {
		return nil
	}
	if len(data) == 0 {
		return errEmptyImage
	}
	return os.WriteFile(c.path(uri, width, height), data, 0o600)
}

// Prune removes entries not used within maxAge and returns how many were
// removed.
func (c *Cache) Prune(maxAge time.Duration) (int, error) {
	if c == nil {
		return 0, nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
				errs = append(errs, err)
				continue
			}
			removed++
		}
	}
	return removed, errors.Join(errs...)
}

// Clear removes every cached image.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
