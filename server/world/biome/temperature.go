package biome

import (
	"math"

	"github.com/brentp/intintmap"
)

// temperatureLRUSize is the fixed capacity of one TemperatureCache: large
// enough to cover a full 16x16 column's worth of height-adjusted
// temperature lookups during surface materialization without thrashing.
const temperatureLRUSize = 1024

// packPos folds a block position into the single int64 key the backing
// intintmap indexes by: x shifted by 42, y by 21 and the low 21 bits of z,
// combined by XOR. This differs from density.Cache2D's x<<32|z packing.
func packPos(x, y, z int32) int64 {
	return int64(x)<<42 ^ int64(y)<<21 ^ int64(z)&0x1fffff
}

// TemperatureCache is a per-thread (not safe for concurrent use; one
// instance per generation worker) fixed-capacity cache mapping a packed
// block position to its already height-adjusted temperature value. Once
// full, it evicts in insertion order: Get does not refresh an entry, so the
// oldest inserted key is dropped first regardless of how recently it was
// read. The
// generator and surface materializer both query temperature far more
// often than the underlying density sample changes per block, so caching
// it avoids re-walking the noise router on every Temperature condition
// check in a rule tree.
type TemperatureCache struct {
	m     *intintmap.Map
	order []int64
}

// NewTemperatureCache creates an empty cache at the fixed capacity.
func NewTemperatureCache() *TemperatureCache {
	return &TemperatureCache{
		m:     intintmap.New(temperatureLRUSize, 0.75),
		order: make([]int64, 0, temperatureLRUSize),
	}
}

// Get returns the cached temperature at (x, y, z), if present.
func (c *TemperatureCache) Get(x, y, z int32) (float64, bool) {
	key := packPos(x, y, z)
	bits, ok := c.m.Get(key)
	if !ok {
		return 0, false
	}
	return math.Float64frombits(uint64(bits)), true
}

// Put stores v as the temperature for (x, y, z). intintmap has no delete
// operation, so eviction past capacity rebuilds the backing map from the
// surviving insertion order rather than removing the oldest entry in
// place — an O(capacity) rebuild that happens on every insertion of a new
// key once the cache is full.
func (c *TemperatureCache) Put(x, y, z int32, v float64) {
	key := packPos(x, y, z)
	if _, exists := c.m.Get(key); !exists {
		if len(c.order) >= temperatureLRUSize {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}
	c.m.Put(key, int64(math.Float64bits(v)))
}

// evictOldest drops the single oldest surviving entry and rebuilds the
// backing map around the rest.
func (c *TemperatureCache) evictOldest() {
	dropped := c.order[0]
	rest := c.order[1:]

	fresh := intintmap.New(temperatureLRUSize, 0.75)
	for _, key := range rest {
		if bits, ok := c.m.Get(key); ok {
			fresh.Put(key, bits)
		}
	}
	_ = dropped
	c.m = fresh
	c.order = append(c.order[:0], rest...)
}
