package metadata

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/spacemeshos/go-subxt/log"
	"github.com/spacemeshos/go-subxt/metrics"
)

const subsystem = "metadata"

var cacheLookups = metrics.NewCounter(
	"cache_lookups_total",
	subsystem,
	"Number of registry cache lookups by result",
	[]string{"result"},
)

var (
	cacheHit  = cacheLookups.WithLabelValues("hit")
	cacheMiss = cacheLookups.WithLabelValues("miss")
)

// CacheOpt configures Cache.
type CacheOpt func(*Cache)

// WithCacheLogger sets logger for Cache.
func WithCacheLogger(logger log.Log) CacheOpt {
	return func(c *Cache) {
		c.logger = logger
	}
}

// Cache keeps registries of recently seen runtime versions. Registries are
// keyed by Version so that a registry is never reused after a runtime upgrade.
type Cache struct {
	logger log.Log
	cache  *lru.Cache[Version, *Metadata]
}

// NewCache creates a cache that holds up to size registries.
func NewCache(size int, opts ...CacheOpt) (*Cache, error) {
	cache, err := lru.New[Version, *Metadata](size)
	if err != nil {
		return nil, fmt.Errorf("create registry cache: %w", err)
	}
	c := &Cache{logger: log.NewNop(), cache: cache}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Add stores md under its version, replacing the previous registry of that version.
func (c *Cache) Add(md *Metadata) {
	if evicted := c.cache.Add(md.Version(), md); evicted {
		c.logger.With().Debug("evicted registry from cache", log.Stringer("added", md.Version()))
	}
}

// Get returns the registry for version.
func (c *Cache) Get(version Version) (*Metadata, bool) {
	md, ok := c.cache.Get(version)
	if ok {
		cacheHit.Inc()
	} else {
		cacheMiss.Inc()
	}
	return md, ok
}

// GetOrLoad returns the cached registry for version or loads and caches it.
// A loaded registry whose version differs from the requested one is rejected.
func (c *Cache) GetOrLoad(version Version, load func() (*Metadata, error)) (*Metadata, error) {
	if md, ok := c.Get(version); ok {
		return md, nil
	}
	md, err := load()
	if err != nil {
		return nil, err
	}
	if md == nil {
		return nil, invalidf("loader returned no registry for %v", version)
	}
	if md.Version() != version {
		return nil, invalidf("loaded registry for %v, requested %v", md.Version(), version)
	}
	c.Add(md)
	c.logger.With().Debug("loaded registry", log.Stringer("version", version), log.Int("pallets", len(md.pallets)))
	return md, nil
}

// Len returns the number of cached registries.
func (c *Cache) Len() int {
	return c.cache.Len()
}
