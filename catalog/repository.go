package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"gopkg.in/yaml.v3"
)

var ErrUnknownKind = errors.New("unknown catalog kind")

// Repository is the only way listing code reaches catalog data, so the
// static seed can be swapped for a database without touching filter/sort.
type Repository interface {
	Collection(ctx context.Context, kind models.CatalogKind) (*Collection, error)
}

// ─────────────────────────────────────────────────────────────
// Static repository (embedded seed data)
// ─────────────────────────────────────────────────────────────

//go:embed data/catalog.yaml
var seedCatalog []byte

type seedFile struct {
	Kinds []seedKind `yaml:"kinds"`
}

type seedKind struct {
	Kind       models.CatalogKind   `yaml:"kind"`
	MatchMode  models.MatchMode     `yaml:"match_mode"`
	Categories models.CategorySet   `yaml:"categories"`
	Items      []models.CatalogItem `yaml:"items"`
}

// StaticRepository serves collections built once at startup.
type StaticRepository struct {
	collections map[models.CatalogKind]*Collection
}

func NewStaticRepository(collections ...*Collection) *StaticRepository {
	r := &StaticRepository{collections: make(map[models.CatalogKind]*Collection, len(collections))}
	for _, c := range collections {
		r.collections[c.Kind] = c
	}
	return r
}

// LoadSeedRepository parses the embedded seed catalog. overrides replaces the
// category match mode of individual kinds.
func LoadSeedRepository(overrides map[models.CatalogKind]models.MatchMode) (*StaticRepository, error) {
	return ParseSeed(seedCatalog, overrides)
}

func ParseSeed(raw []byte, overrides map[models.CatalogKind]models.MatchMode) (*StaticRepository, error) {
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	collections := make([]*Collection, 0, len(file.Kinds))
	for _, k := range file.Kinds {
		mode := k.MatchMode
		if m, ok := overrides[k.Kind]; ok {
			mode = m
		}
		c, err := NewCollection(k.Kind, k.Categories, mode, k.Items)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", k.Kind, err)
		}
		collections = append(collections, c)
	}
	return NewStaticRepository(collections...), nil
}

func (r *StaticRepository) Collection(_ context.Context, kind models.CatalogKind) (*Collection, error) {
	c, ok := r.collections[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return c, nil
}

// Collections returns every collection in menu order.
func (r *StaticRepository) Collections() []*Collection {
	out := make([]*Collection, 0, len(r.collections))
	for _, kind := range models.CatalogKinds {
		if c, ok := r.collections[kind]; ok {
			out = append(out, c)
		}
	}
	return out
}
