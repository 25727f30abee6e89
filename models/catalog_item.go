package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ═══════════════════════════════════════════════════════════
// Catalog Kinds
// ═══════════════════════════════════════════════════════════

type CatalogKind string

const (
	KindCrafts     CatalogKind = "crafts"
	KindArtisans   CatalogKind = "artisans"
	KindCategories CatalogKind = "categories"
	KindFeatured   CatalogKind = "featured"
)

// CatalogKinds lists every kind served by the storefront, in menu order.
var CatalogKinds = []CatalogKind{KindCrafts, KindArtisans, KindCategories, KindFeatured}

// ParseCatalogKind accepts the plural route form and a few singular aliases.
func ParseCatalogKind(raw string) (CatalogKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "crafts", "craft":
		return KindCrafts, true
	case "artisans", "artisan":
		return KindArtisans, true
	case "categories", "category":
		return KindCategories, true
	case "featured", "featured-items", "featured_items":
		return KindFeatured, true
	}
	return "", false
}

// Moderation statuses shown on the admin product panel
const (
	ItemStatusPending   = "pending"
	ItemStatusApproved  = "approved"
	ItemStatusRejected  = "rejected"
	ItemStatusSuspended = "suspended"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type TagsList []string

// Scan accepts both []byte (postgres) and string (sqlite) payloads.
func (t *TagsList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = make(TagsList, 0)
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("failed to scan TagsList")
	}
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

// ═══════════════════════════════════════════════════════════
// Main Catalog Model (GORM)
// ═══════════════════════════════════════════════════════════

// CatalogItem is the shared shape behind crafts, artisans, categories and
// featured items. Price is whole Tanzanian Shillings.
type CatalogItem struct {
	ID              string      `json:"id" yaml:"id" gorm:"primaryKey;size:64"`
	Kind            CatalogKind `json:"kind" yaml:"kind" gorm:"primaryKey;size:32"`
	Position        int         `json:"-" yaml:"-" gorm:"not null;default:0"` // insertion order within the kind
	Name            string      `json:"name" yaml:"name" gorm:"not null;index"`
	Category        string      `json:"category" yaml:"category" gorm:"not null;index"`
	Price           *int64      `json:"price,omitempty" yaml:"price,omitempty" gorm:"check:price >= 0"`
	Rating          float64     `json:"rating" yaml:"rating" gorm:"not null;default:0"`
	Tags            TagsList    `json:"tags" yaml:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	Featured        bool        `json:"featured" yaml:"featured" gorm:"not null;default:false"`
	Trending        bool        `json:"trending" yaml:"trending" gorm:"not null;default:false"`
	InStock         bool        `json:"in_stock" yaml:"in_stock" gorm:"not null;default:false"`
	Likes           int         `json:"likes" yaml:"likes" gorm:"not null;default:0"`
	NewItems        int         `json:"new_items,omitempty" yaml:"new_items,omitempty" gorm:"not null;default:0"`
	PopularityScore int         `json:"popularity_score,omitempty" yaml:"popularity_score,omitempty" gorm:"not null;default:0"`
	Location        string      `json:"location,omitempty" yaml:"location,omitempty"`
	ArtisanName     string      `json:"artisan_name,omitempty" yaml:"artisan_name,omitempty"`
	Description     string      `json:"description" yaml:"description"`
	Image           string      `json:"image,omitempty" yaml:"image,omitempty"`
	Status          string      `json:"status" yaml:"status" gorm:"not null;default:'approved';index"`
	CreatedAt       time.Time   `json:"created_at" yaml:"created_at"`
}

// TableName specifies the table name
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// HasPrice reports whether the item carries a price.
func (i CatalogItem) HasPrice() bool {
	return i.Price != nil
}

// Validate checks a single item against the collection invariants. Uniqueness
// of IDs is checked by the collection itself.
func (i CatalogItem) Validate(categories CategorySet) error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidCatalogItem)
	}
	if i.Price != nil && *i.Price < 0 {
		return fmt.Errorf("%w: %s has negative price %d", ErrInvalidCatalogItem, i.ID, *i.Price)
	}
	if i.Rating < 0 || i.Rating > 5 {
		return fmt.Errorf("%w: %s has rating %.2f outside [0,5]", ErrInvalidCatalogItem, i.ID, i.Rating)
	}
	if !categories.Contains(i.Category) {
		return fmt.Errorf("%w: %s has orphan category %q", ErrInvalidCatalogItem, i.ID, i.Category)
	}
	return nil
}

var ErrInvalidCatalogItem = errors.New("invalid catalog item")

// PriceOf returns a pointer to a price literal, for fixtures and requests.
func PriceOf(v int64) *int64 {
	return &v
}

// ═══════════════════════════════════════════════════════════
// Category Enumeration
// ═══════════════════════════════════════════════════════════

// CategoryAll is the sentinel that disables the category filter.
const CategoryAll = "All"

// CategorySet is the fixed, ordered category enumeration of one catalog kind.
type CategorySet []string

func (s CategorySet) Contains(category string) bool {
	for _, c := range s {
		if c == category {
			return true
		}
	}
	return false
}

// WithAll prepends the "All" sentinel for menus.
func (s CategorySet) WithAll() []string {
	out := make([]string, 0, len(s)+1)
	out = append(out, CategoryAll)
	return append(out, s...)
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// CatalogFilters describes the filter controls of one listing page.
type CatalogFilters struct {
	Kind       CatalogKind    `json:"kind"`
	Categories []FilterOption `json:"categories"`
	PriceRange *PriceRange    `json:"price_range,omitempty"`
	SortKeys   []string       `json:"sort_keys"`
	MatchMode  string         `json:"category_match_mode"`
	ViewModes  []string       `json:"view_modes"`
	TotalItems int            `json:"total_items"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange represents min and max price
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type CatalogStats struct {
	Kind          CatalogKind    `json:"kind"`
	TotalItems    int            `json:"total_items"`
	ByStatus      map[string]int `json:"by_status"`
	FeaturedItems int            `json:"featured_items"`
	InStockItems  int            `json:"in_stock_items"`
	AverageRating float64        `json:"average_rating"`
	AveragePrice  float64        `json:"average_price"`
}
