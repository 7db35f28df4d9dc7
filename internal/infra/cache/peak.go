package cache

import (
	"log/slog"

	"restaurant-deals/internal/domain/availability"
	"restaurant-deals/internal/pkg/config"
	"restaurant-deals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/maypok86/otter/v2"
)

const defaultMaxEntries = 16

// PeakCache memoises peak windows by snapshot version. A snapshot never
// changes after it is published, so an entry stays valid until evicted.
type PeakCache struct {
	cache  *otter.Cache[uuid.UUID, availability.PeakWindow]
	logger *slog.Logger
}

func NewPeakCache(cfg config.Config, logger *slog.Logger) (*PeakCache, error) {
	size := cfg.Cache.MaxEntries
	if size <= 0 {
		size = defaultMaxEntries
	}
	opts := &otter.Options[uuid.UUID, availability.PeakWindow]{
		MaximumSize:     size,
		InitialCapacity: min(size, defaultMaxEntries),
	}
	if cfg.Cache.TTL > 0 {
		opts.ExpiryCalculator = otter.ExpiryWriting[uuid.UUID, availability.PeakWindow](cfg.Cache.TTL)
	}

	c, err := otter.New(opts)
	if err != nil {
		return nil, errs.Wrap(err, "create peak window cache")
	}
	logger.Debug("peak window cache initialized", "max_entries", size, "ttl", cfg.Cache.TTL)
	return &PeakCache{cache: c, logger: logger}, nil
}

func (c *PeakCache) Get(version uuid.UUID) (availability.PeakWindow, bool) {
	w, ok := c.cache.GetIfPresent(version)
	if !ok {
		c.logger.Debug("peak window cache miss", "version", version.String())
	}
	return w, ok
}

func (c *PeakCache) Set(version uuid.UUID, w availability.PeakWindow) {
	c.cache.Set(version, w)
}

func (c *PeakCache) Invalidate(version uuid.UUID) {
	c.cache.Invalidate(version)
}

func (c *PeakCache) Len() int {
	return c.cache.EstimatedSize()
}
