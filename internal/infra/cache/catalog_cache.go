package cache

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const (
	courseListKey      = "courses:list"
	courseDetailPrefix = "course:detail:"
)

// Catalog is a cache-aside layer over course reads. Lists and details are
// cached as JSON with separate TTLs; writes evict the affected keys. A nil
// Redis client turns every lookup into a miss and every write into a no-op.
type Catalog struct {
	rdb       *redis.Client
	listTTL   time.Duration
	detailTTL time.Duration
}

// NewCatalog is the constructor for the catalog cache.
func NewCatalog(rdb *redis.Client, cfg *config.Config) *Catalog {
	listTTL := 10 * time.Minute
	detailTTL := time.Hour
	if cfg.Catalog != nil {
		if cfg.Catalog.ListCacheTTL > 0 {
			listTTL = cfg.Catalog.ListCacheTTL
		}
		if cfg.Catalog.DetailCacheTTL > 0 {
			detailTTL = cfg.Catalog.DetailCacheTTL
		}
	}

	return &Catalog{
		rdb:       rdb,
		listTTL:   listTTL,
		detailTTL: detailTTL,
	}
}

// GetList returns the cached catalog listing, if present.
func (c *Catalog) GetList(ctx context.Context) ([]*entity.Course, bool) {
	if c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, courseListKey).Result()
	if err != nil {
		return nil, false
	}

	var courses []*entity.Course
	if err := json.Unmarshal([]byte(val), &courses); err != nil {
		return nil, false
	}

	return courses, true
}

// SetList stores the catalog listing. Cache failures are swallowed; the
// database remains the source of truth.
func (c *Catalog) SetList(ctx context.Context, courses []*entity.Course) {
	if c.rdb == nil {
		return
	}

	data, err := json.Marshal(courses)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, courseListKey, data, c.listTTL)
}

// GetDetail returns the cached course detail for an external id, if present.
func (c *Catalog) GetDetail(ctx context.Context, externalID string) (*entity.Course, bool) {
	if c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, courseDetailPrefix+externalID).Result()
	if err != nil {
		return nil, false
	}

	var course entity.Course
	if err := json.Unmarshal([]byte(val), &course); err != nil {
		return nil, false
	}

	return &course, true
}

// SetDetail stores a course detail under its external id.
func (c *Catalog) SetDetail(ctx context.Context, externalID string, course *entity.Course) {
	if c.rdb == nil {
		return
	}

	data, err := json.Marshal(course)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, courseDetailPrefix+externalID, data, c.detailTTL)
}

// EvictDetail drops the cached detail after a write to the course's
// ratings or videos.
func (c *Catalog) EvictDetail(ctx context.Context, externalID string) {
	if c.rdb == nil {
		return
	}

	c.rdb.Del(ctx, courseDetailPrefix+externalID)
}

// EvictList drops the cached listing after the catalog changes.
func (c *Catalog) EvictList(ctx context.Context) {
	if c.rdb == nil {
		return
	}

	c.rdb.Del(ctx, courseListKey)
}
