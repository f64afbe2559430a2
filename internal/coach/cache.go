// ABOUTME: File-backed response cache, one file per prompt hash.
// ABOUTME: Lives under the data directory so it clears with the program.
package coach

import (
	"os"
	"path/filepath"
)

// FileCache stores responses as individual files under a directory.
type FileCache struct {
	dir string
}

// NewFileCache creates the cache directory if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, key+".txt")
}

// Get returns a cached response if present.
func (c *FileCache) Get(key string) (string, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes a response to the cache.
func (c *FileCache) Set(key, value string) error {
	return os.WriteFile(c.path(key), []byte(value), 0600)
}
