// Package cache stores extracted document text so repeated lexicon builds
// and batch runs do not re-extract the same document.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DocumentKey generates a cache key for a document handle. Local files mix
// in size and mtime so edits invalidate the entry; URLs key on the URL alone.
func DocumentKey(handle string) string {
	raw := handle
	if info, err := os.Stat(handle); err == nil {
		raw = fmt.Sprintf("%s|%d|%d", handle, info.Size(), info.ModTime().UnixNano())
	}
	hash := sha256.Sum256([]byte(raw))
	return "stelint:v1:" + hex.EncodeToString(hash[:])
}
