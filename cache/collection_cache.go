package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const collectionKeyPrefix = "catalog:collection:"

type cachedCollection struct {
	Kind       models.CatalogKind   `json:"kind"`
	Categories models.CategorySet   `json:"categories"`
	MatchMode  models.MatchMode     `json:"match_mode"`
	Items      []models.CatalogItem `json:"items"`
}

// CollectionCache is a catalog.Repository that keeps loaded collections in
// redis so database-backed catalogs are not re-queried on every request.
// Redis failures fall through to the wrapped repository.
type CollectionCache struct {
	inner  catalog.Repository
	client redis.Cmdable
	ttl    time.Duration
	log    *zap.Logger
}

func NewCollectionCache(inner catalog.Repository, client redis.Cmdable, ttl time.Duration) *CollectionCache {
	if ttl <= 0 {
		ttl = TTL
	}
	return &CollectionCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    zap.L().Named("cache.collection"),
	}
}

func collectionKey(kind models.CatalogKind) string {
	return collectionKeyPrefix + string(kind)
}

func (c *CollectionCache) Collection(ctx context.Context, kind models.CatalogKind) (*catalog.Collection, error) {
	raw, err := c.client.Get(ctx, collectionKey(kind)).Bytes()
	switch {
	case err == nil:
		col, decodeErr := decodeCollection(raw)
		if decodeErr == nil {
			return col, nil
		}
		c.log.Warn("dropping undecodable cache entry", zap.String("kind", string(kind)), zap.Error(decodeErr))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("redis get failed", zap.String("kind", string(kind)), zap.Error(err))
	}

	col, err := c.inner.Collection(ctx, kind)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedCollection{
		Kind:       col.Kind,
		Categories: col.Categories,
		MatchMode:  col.MatchMode,
		Items:      col.Items,
	})
	if err != nil {
		return col, nil
	}
	if err := c.client.Set(ctx, collectionKey(kind), payload, c.ttl).Err(); err != nil {
		c.log.Warn("redis set failed", zap.String("kind", string(kind)), zap.Error(err))
	}
	return col, nil
}

// Invalidate removes the cached collections of the given kinds (all kinds
// when none are given).
func (c *CollectionCache) Invalidate(ctx context.Context, kinds ...models.CatalogKind) error {
	if len(kinds) == 0 {
		kinds = models.CatalogKinds
	}
	keys := make([]string, 0, len(kinds))
	for _, k := range kinds {
		keys = append(keys, collectionKey(k))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate collection cache: %w", err)
	}
	return nil
}

func decodeCollection(raw []byte) (*catalog.Collection, error) {
	var cached cachedCollection
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}
	return catalog.NewCollection(cached.Kind, cached.Categories, cached.MatchMode, cached.Items)
}
