package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// cacheSchemaVersion must change whenever the rendered formats or the
// payload layout change.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [32]byte

// CachePayload is what OutputCache stores per key.
type CachePayload struct {
	Schema uint16
	Mode   Output
	Tokens []byte
	Tree   []byte
}

// OutputCache keeps rendered outputs of successfully analyzed files on disk,
// keyed by content hash and requested outputs. Safe for concurrent use.
type OutputCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenOutputCache opens (creating if needed) a cache rooted at dir.
func OpenOutputCache(dir string) (*OutputCache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "jackfront")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &OutputCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *OutputCache) Dir() string { return c.dir }

// CacheKey combines the schema, requested outputs and source hash.
func CacheKey(content [32]byte, mode Output) Digest {
	h := sha256.New()
	var hdr [3]byte
	binary.BigEndian.PutUint16(hdr[:2], cacheSchemaVersion)
	hdr[2] = byte(mode)
	_, _ = h.Write(hdr[:])
	_, _ = h.Write(content[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *OutputCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "out", hexKey[:2], hexKey+".mp")
}

// Put serialises and writes a payload.
func (c *OutputCache) Put(key Digest, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	payload.Schema = cacheSchemaVersion
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return writeAtomic(c.pathFor(key), data)
}

// Get reads a payload. A missing entry or one from another schema is a miss.
func (c *OutputCache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("cache entry %x: %w", key[:4], err)
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *OutputCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "out"))
}
