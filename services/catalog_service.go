package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/capoeira360/Craft-Art-Market-sub000/cache"
	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/metrics"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"go.uber.org/zap"
)

// CatalogService answers every listing page from a catalog.Repository. It
// never writes to the catalog.
type CatalogService struct {
	repo  catalog.Repository
	cache *cache.ProjectionCache
	log   *zap.Logger
}

// NewCatalogService wires a repository and an optional projection cache
// (nil disables memoization).
func NewCatalogService(repo catalog.Repository, projections *cache.ProjectionCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: projections,
		log:   zap.L().Named("store.catalog"),
	}
}

// Collection loads one kind. Unknown kinds wrap catalog.ErrUnknownKind.
func (s *CatalogService) Collection(ctx context.Context, kind models.CatalogKind) (*catalog.Collection, error) {
	c, err := s.repo.Collection(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s catalog: %w", kind, err)
	}
	return c, nil
}

// List runs filter, stable sort and pagination for one kind.
func (s *CatalogService) List(ctx context.Context, kind models.CatalogKind, state models.FilterState) (models.CatalogView, error) {
	c, err := s.Collection(ctx, kind)
	if err != nil {
		return models.CatalogView{}, err
	}

	var key string
	if s.cache != nil {
		key = cache.ProjectionKey(c, state)
		if view, ok := s.cache.Get(key); ok {
			metrics.Projections.WithLabelValues(string(kind), "hit").Inc()
			return view, nil
		}
	}

	view, err := catalog.ProjectCollection(c, state)
	if err != nil {
		return models.CatalogView{}, err
	}
	metrics.Projections.WithLabelValues(string(kind), "miss").Inc()

	if s.cache != nil {
		s.cache.Set(key, view)
	}
	s.log.Debug("projected catalog",
		zap.String("kind", string(kind)),
		zap.Int("filtered", view.FilteredCount),
		zap.Int("total", view.TotalCount),
	)
	return view, nil
}

func (s *CatalogService) Filters(ctx context.Context, kind models.CatalogKind) (models.CatalogFilters, error) {
	c, err := s.Collection(ctx, kind)
	if err != nil {
		return models.CatalogFilters{}, err
	}
	return c.Filters(), nil
}

// Find looks an item up by id. A missing item is NotFound, not an error.
func (s *CatalogService) Find(ctx context.Context, kind models.CatalogKind, id string) (models.Lookup[models.CatalogItem], error) {
	c, err := s.Collection(ctx, kind)
	if err != nil {
		return models.NotFound[models.CatalogItem](), err
	}
	return c.Find(id), nil
}

func (s *CatalogService) Stats(ctx context.Context, kind models.CatalogKind) (models.CatalogStats, error) {
	c, err := s.Collection(ctx, kind)
	if err != nil {
		return models.CatalogStats{}, err
	}
	return c.Stats(), nil
}

// IsCatalogClientError reports errors caused by the request rather than the
// server: unknown kinds and unknown sort keys.
func IsCatalogClientError(err error) bool {
	return errors.Is(err, catalog.ErrUnknownKind) || errors.Is(err, catalog.ErrUnknownSortKey)
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var (
	catalogService     *CatalogService
	catalogServiceOnce sync.Once
)

// InitCatalogService installs the catalog service used by the handlers.
func InitCatalogService(s *CatalogService) {
	catalogService = s
	catalogServiceOnce = sync.Once{}
}

// GetCatalogService returns the global catalog service. Without an explicit
// Init it serves the embedded seed catalog.
func GetCatalogService() *CatalogService {
	catalogServiceOnce.Do(func() {
		if catalogService == nil {
			repo, err := catalog.LoadSeedRepository(nil)
			if err != nil {
				zap.L().Named("store.catalog").Fatal("embedded seed catalog is invalid", zap.Error(err))
			}
			catalogService = NewCatalogService(repo, cache.NewProjectionCache(cache.TTL, cache.DefaultMaxEntries))
		}
	})
	return catalogService
}
