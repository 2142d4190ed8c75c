package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Every operation succeeds and nothing is ever retained.
	if err := c.Set(ctx, "render:abc:svg", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "render:abc:svg")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit || data != nil {
		t.Errorf("Get = (%q, %v), want a miss", data, hit)
	}
	if err := c.Delete(ctx, "render:abc:svg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("digraph {}"))
	if len(h) != 64 {
		t.Fatalf("Hash length = %d, want 64 hex chars", len(h))
	}
	if h != Hash([]byte("digraph {}")) {
		t.Error("Hash is not deterministic")
	}
	if h == Hash([]byte("digraph { a }")) {
		t.Error("distinct inputs hash identically")
	}
}

func TestRenderKey(t *testing.T) {
	k1 := RenderKey("digraph { a -> b }", "svg")
	k2 := RenderKey("digraph { a -> b }", "svg")
	if k1 != k2 {
		t.Error("RenderKey should be deterministic")
	}

	// Format is part of the key
	k3 := RenderKey("digraph { a -> b }", "png")
	if k1 == k3 {
		t.Error("Different formats should produce different keys")
	}

	// DOT content is part of the key
	k4 := RenderKey("digraph { a -> c }", "svg")
	if k1 == k4 {
		t.Error("Different DOT sources should produce different keys")
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Missing key is a miss, not an error
	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get missing: hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "key", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit after Set")
	}
	if string(data) != "<svg/>" {
		t.Errorf("unexpected data: %q", data)
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expected miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Already-expired entry is a miss
	if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "stale"); hit {
		t.Error("expired entry should be a miss")
	}

	// Zero TTL means no expiration
	if err := c.Set(ctx, "keep", []byte("data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "keep"); !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestFileCacheEvictsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	fc := &FileCache{dir: t.TempDir()}

	path := fc.entryPath("broken")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := fc.Get(ctx, "broken"); err != nil || hit {
		t.Fatalf("Get corrupt entry: hit=%v err=%v, want a clean miss", hit, err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Error("corrupt entry was not evicted")
	}
}
