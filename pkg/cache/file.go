package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores artifacts as files under a base directory. Each entry
// is a JSON envelope holding the rendered bytes and an optional expiry;
// expired and unreadable entries are evicted on read, so the directory
// needs no sweeper.
type FileCache struct {
	dir string
}

// NewFileCache opens a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// envelope is the on-disk shape of one entry. A zero Expires means the
// entry never expires.
type envelope struct {
	Blob    []byte    `json:"blob"`
	Expires time.Time `json:"expires,omitempty"`
}

// Get reads an entry, treating missing, corrupt, and expired files as a
// miss. Corrupt and expired files are removed.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !env.Expires.IsZero() && time.Now().After(env.Expires) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return env.Blob, true, nil
}

// Set writes an entry through a temp file so a crash mid-write never
// leaves a truncated artifact behind.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	env := envelope{Blob: data}
	if ttl > 0 {
		env.Expires = time.Now().Add(ttl)
	}
	encoded, err := json.Marshal(env)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes an entry. Missing entries are not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Close is a no-op; the cache holds no open handles between calls.
func (c *FileCache) Close() error { return nil }

// entryPath maps a key to its file. Keys from [RenderKey] embed a content
// hash and a format suffix, so they are hashed again into a fixed-length
// name and fanned out over 256 subdirectories.
func (c *FileCache) entryPath(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
