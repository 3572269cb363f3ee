// Package shell provides the shell prompt integration: a small on-disk cache
// of today's status and the hook scripts that read it.
package shell

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/dleamy/daila/internal/calendar"
)

const cacheFileName = ".prompt-cache"

// PromptCache is the cached prompt status for one day.
type PromptCache struct {
	Date      calendar.Date `json:"date"`
	Done      int           `json:"done"`
	Total     int           `json:"total"`
	Streak    int           `json:"streak"`
	Backend   string        `json:"backend"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// CachePath returns the full path to the prompt cache file.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, cacheFileName)
}

// ReadCache reads the prompt cache from disk. It returns nil when the cache
// is missing or unreadable.
func ReadCache(dataDir string) *PromptCache {
	data, err := os.ReadFile(CachePath(dataDir))
	if err != nil {
		return nil
	}
	var c PromptCache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

// WriteCache writes the prompt cache to disk.
func WriteCache(dataDir string, c *PromptCache) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(CachePath(dataDir), data, 0600)
}

// IsFresh reports whether the cache is still valid at now. A cache from
// another day is always stale.
func (c *PromptCache) IsFresh(now time.Time, ttl time.Duration) bool {
	if c == nil {
		return false
	}
	if c.Date != calendar.FromTime(now) {
		return false
	}
	return now.Sub(c.UpdatedAt) <= ttl
}

// InvalidateCache removes the prompt cache file.
func InvalidateCache(dataDir string) error {
	if err := os.Remove(CachePath(dataDir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
