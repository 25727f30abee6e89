package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/cespare/xxhash/v2"
)

// Collection is one read-only catalog kind: its items in insertion order,
// its fixed category enumeration and its category match mode.
type Collection struct {
	Kind       models.CatalogKind
	Categories models.CategorySet
	MatchMode  models.MatchMode
	Items      []models.CatalogItem
	// Version changes whenever the item data changes.
	Version string

	byID map[string]int
}

// NewCollection validates the items and builds the collection. IDs must be
// unique and every item must satisfy the catalog invariants.
func NewCollection(kind models.CatalogKind, categories models.CategorySet, mode models.MatchMode, items []models.CatalogItem) (*Collection, error) {
	if mode == "" {
		mode = models.MatchExact
	}

	c := &Collection{
		Kind:       kind,
		Categories: categories,
		MatchMode:  mode,
		Items:      make([]models.CatalogItem, 0, len(items)),
		byID:       make(map[string]int, len(items)),
	}

	for i, item := range items {
		if item.Kind == "" {
			item.Kind = kind
		}
		if item.Kind != kind {
			return nil, fmt.Errorf("%w: %s belongs to %s, not %s", models.ErrInvalidCatalogItem, item.ID, item.Kind, kind)
		}
		if item.Status == "" {
			item.Status = models.ItemStatusApproved
		}
		if item.Tags == nil {
			item.Tags = models.TagsList{}
		}
		item.Position = i
		if err := item.Validate(categories); err != nil {
			return nil, err
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s in %s", models.ErrInvalidCatalogItem, item.ID, kind)
		}
		c.byID[item.ID] = len(c.Items)
		c.Items = append(c.Items, item)
	}

	raw, err := json.Marshal(c.Items)
	if err != nil {
		return nil, fmt.Errorf("hash %s collection: %w", kind, err)
	}
	c.Version = strconv.FormatUint(xxhash.Sum64(raw), 16)
	return c, nil
}

// Find returns the item with id, or NotFound.
func (c *Collection) Find(id string) models.Lookup[models.CatalogItem] {
	if i, ok := c.byID[id]; ok {
		return models.Found(c.Items[i])
	}
	return models.NotFound[models.CatalogItem]()
}

// Filters builds the filter metadata of the collection's listing page.
func (c *Collection) Filters() models.CatalogFilters {
	counts := make(map[string]int, len(c.Categories))
	var (
		priceRange *models.PriceRange
	)
	for _, item := range c.Items {
		counts[item.Category]++
		if item.Price == nil {
			continue
		}
		if priceRange == nil {
			priceRange = &models.PriceRange{Min: *item.Price, Max: *item.Price}
			continue
		}
		priceRange.Min = min(priceRange.Min, *item.Price)
		priceRange.Max = max(priceRange.Max, *item.Price)
	}

	options := make([]models.FilterOption, 0, len(c.Categories)+1)
	options = append(options, models.FilterOption{Label: models.CategoryAll, Value: models.CategoryAll, Count: len(c.Items)})
	for _, name := range c.Categories {
		options = append(options, models.FilterOption{Label: name, Value: name, Count: counts[name]})
	}

	sortKeys := make([]string, 0, len(models.SortKeys))
	for _, k := range models.SortKeys {
		sortKeys = append(sortKeys, string(k))
	}

	return models.CatalogFilters{
		Kind:       c.Kind,
		Categories: options,
		PriceRange: priceRange,
		SortKeys:   sortKeys,
		MatchMode:  string(c.MatchMode),
		ViewModes:  []string{string(models.ViewGrid), string(models.ViewList)},
		TotalItems: len(c.Items),
	}
}

// Stats summarises the collection for the admin panel.
func (c *Collection) Stats() models.CatalogStats {
	stats := models.CatalogStats{
		Kind:       c.Kind,
		TotalItems: len(c.Items),
		ByStatus:   make(map[string]int),
	}
	var ratingSum, priceSum float64
	priced := 0
	for _, item := range c.Items {
		stats.ByStatus[item.Status]++
		if item.Featured {
			stats.FeaturedItems++
		}
		if item.InStock {
			stats.InStockItems++
		}
		ratingSum += item.Rating
		if item.Price != nil {
			priceSum += float64(*item.Price)
			priced++
		}
	}
	if len(c.Items) > 0 {
		stats.AverageRating = ratingSum / float64(len(c.Items))
	}
	if priced > 0 {
		stats.AveragePrice = priceSum / float64(priced)
	}
	return stats
}
