// Package cache is a best-effort on-disk response cache. It exists to bound
// request volume against slow or rate-limited metadata providers, not to
// guarantee correctness: any failure degrades to "fetch from source" and is
// never surfaced to the caller.
package cache

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// DefaultExpiry is the freshness window applied when the caller does not
// specify one.
const DefaultExpiry = 24 * time.Hour

// Cache stores raw provider payloads as plain files under a base directory.
// Freshness is derived from file modification time; there is no in-memory
// layer, so entries survive across runs and every read round-trips the
// filesystem. Concurrent processes racing on the same file are last-writer-wins.
type Cache struct {
	fs     afero.Fs
	dir    string
	expiry time.Duration
}

// New returns a cache rooted at dir on the real filesystem.
func New(dir string) *Cache {
	return NewWithFs(afero.NewOsFs(), dir)
}

// NewWithFs returns a cache using the given filesystem. Tests pass an
// afero.NewMemMapFs.
func NewWithFs(fs afero.Fs, dir string) *Cache {
	return &Cache{fs: fs, dir: dir, expiry: DefaultExpiry}
}

// SetExpiry changes the freshness window used by Get. Non-positive values
// are ignored.
func (c *Cache) SetExpiry(d time.Duration) {
	if d > 0 {
		c.expiry = d
	}
}

// Path templates, one per cached resource kind.

// EpisodeRatingsPath returns the cache file for a show's episode ratings.
func (c *Cache) EpisodeRatingsPath(showID string) string {
	return filepath.Join(c.dir, "ratings", showID+".json")
}

// ShowRatingsPath returns the cache file for the user's show ratings.
func (c *Cache) ShowRatingsPath() string {
	return filepath.Join(c.dir, "ratings", "series.json")
}

// ShowInfoPath returns the cache file for a show's info payload.
func (c *Cache) ShowInfoPath(showID string) string {
	return filepath.Join(c.dir, "series", showID+".json")
}

// SearchResultsPath returns the cache file for a search result, segregated
// by the provider the query went to, e.g. ("trakt", "tt0959621").
func (c *Cache) SearchResultsPath(provider, query string) string {
	return filepath.Join(c.dir, "searchresults", provider+"_"+query+".json")
}

// Get returns the cached payload for path if it exists and is younger than
// the cache's expiry window.
func (c *Cache) Get(path string) ([]byte, bool) {
	return c.GetWithExpiry(path, c.expiry)
}

// GetWithExpiry returns the cached payload for path if it exists and is
// younger than maxAge. Missing files, stale files and read failures all
// report a miss; read failures are logged but never propagated.
func (c *Cache) GetWithExpiry(path string, maxAge time.Duration) ([]byte, bool) {
	if maxAge <= 0 {
		maxAge = DefaultExpiry
	}

	fi, err := c.fs.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[cache] stat %s: %v", path, err)
		}
		return nil, false
	}
	if time.Since(fi.ModTime()) >= maxAge {
		return nil, false
	}

	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		log.Printf("[cache] read %s: %v", path, err)
		return nil, false
	}
	return data, true
}

// Put writes payload to path, creating parent directories as needed. A nil
// payload is a no-op so a failed upstream fetch never clobbers a previous
// good entry. Write failures are logged and swallowed; failing to cache must
// not abort the caller's primary operation.
func (c *Cache) Put(path string, payload []byte) {
	if payload == nil {
		return
	}

	if err := c.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("[cache] mkdir for %s: %v", path, err)
		return
	}
	if err := afero.WriteFile(c.fs, path, payload, 0o644); err != nil {
		log.Printf("[cache] write %s: %v", path, err)
	}
}

// Invalidate deletes the cached file at path. Missing files and permission
// errors are swallowed.
func (c *Cache) Invalidate(path string) {
	if err := c.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[cache] remove %s: %v", path, err)
	}
}
