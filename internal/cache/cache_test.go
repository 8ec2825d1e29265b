package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(filepath.Join(t.TempDir(), "cache"), time.Hour)

	key := DocumentKey("some/doc.pdf")
	if err := c.Set(key, []byte("extracted text"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("Expected cache hit")
	}
	if string(val) != "extracted text" {
		t.Errorf("Got %q", val)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(filepath.Join(t.TempDir(), "cache"), time.Hour)

	key := DocumentKey("doc.pdf")
	if err := c.Set(key, []byte("old"), -time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := c.Get(key); found {
		t.Error("Expired entry must miss")
	}
}

func TestMemoryCache_DefaultTTLFallback(t *testing.T) {
	c := NewMemoryCache(time.Nanosecond, time.Minute)

	if err := c.Set("doc", []byte("text"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, found := c.Get("doc"); found {
		t.Error("Zero-TTL entry must expire with the default TTL")
	}

	if err := c.Set("doc2", []byte("text"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get("doc2"); !found {
		t.Error("Explicit-TTL entry must survive the default TTL")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := NewLayeredCache(time.Hour, dir, time.Hour)

	key := DocumentKey("doc.txt")
	if err := c.Set(key, []byte("text"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// New layered cache over the same dir: memory cold, disk warm
	c2 := NewLayeredCache(time.Hour, dir, time.Hour)
	val, found := c2.Get(key)
	if !found || string(val) != "text" {
		t.Fatalf("Expected disk hit, got found=%v val=%q", found, val)
	}
}

func TestDocumentKey_TracksFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}
	key1 := DocumentKey(path)

	if err := os.WriteFile(path, []byte("version two"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, time.Now(), time.Now().Add(time.Second)); err != nil {
		t.Fatal(err)
	}
	key2 := DocumentKey(path)

	if key1 == key2 {
		t.Error("Key must change when the file changes")
	}
}
