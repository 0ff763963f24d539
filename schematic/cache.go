package schematic

import (
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	sum               [sha256.Size]byte
	maxVolume         int
	maxDepth          int
	legacyFallthrough bool
}

// Cache remembers decode results by content hash. It is safe for concurrent
// use. Returned schematics are shared between callers and must not be modified.
type Cache struct {
	entries *lru.Cache[cacheKey, *Schematic]
}

func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[cacheKey, *Schematic](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Decode returns a cached result for identical input and options, decoding on a miss.
// Failures are not cached.
func (c *Cache) Decode(data []byte, opts Options) (*Schematic, error) {
	key := cacheKey{
		sum:               sha256.Sum256(data),
		maxVolume:         opts.MaxVolume,
		maxDepth:          opts.MaxDepth,
		legacyFallthrough: opts.LegacyFallthrough,
	}
	if s, ok := c.entries.Get(key); ok {
		return s, nil
	}
	s, err := DecodeWithOptions(data, opts)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, s)
	return s, nil
}

func (c *Cache) Len() int {
	return c.entries.Len()
}
