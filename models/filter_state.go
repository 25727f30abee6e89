package models

import (
	"fmt"
	"math"
	"strings"
)

type SortKey string

const (
	SortDefault    SortKey = ""
	SortName       SortKey = "name"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRating     SortKey = "rating"
	SortPopularity SortKey = "popularity"
	SortNewest     SortKey = "newest"
	SortFeatured   SortKey = "featured"
)

// SortKeys lists the keys offered in sort menus.
var SortKeys = []SortKey{SortName, SortPriceAsc, SortPriceDesc, SortRating, SortPopularity, SortNewest, SortFeatured}

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// MatchMode decides how SelectedCategory is compared to an item's category.
type MatchMode string

const (
	MatchExact     MatchMode = "exact"
	MatchSubstring MatchMode = "substring"
)

func ParseMatchMode(raw string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(raw))) {
	case MatchExact:
		return MatchExact, nil
	case MatchSubstring:
		return MatchSubstring, nil
	}
	return "", fmt.Errorf("unknown category match mode %q", raw)
}

// FlagFilters are the boolean toggles; a false field is inactive.
type FlagFilters struct {
	FeaturedOnly bool `json:"featured_only"`
	TrendingOnly bool `json:"trending_only"`
	InStockOnly  bool `json:"in_stock_only"`
}

// FilterState is the per-request filter/sort selection of a listing page.
type FilterState struct {
	SearchQuery      string      `json:"search_query"`
	SelectedCategory string      `json:"selected_category"`
	Flags            FlagFilters `json:"flags"`
	PriceRange       PriceRange  `json:"price_range"`
	SortKey          SortKey     `json:"sort_key"`
	ViewMode         ViewMode    `json:"view_mode"`
	Page             int         `json:"page"`
	Limit            int         `json:"limit"` // 0 disables pagination
}

// UnboundedPrice is the default upper price bound.
const UnboundedPrice int64 = math.MaxInt64

// DefaultFilterState is the state a page mounts with: every filter a no-op.
func DefaultFilterState() FilterState {
	return FilterState{
		SelectedCategory: CategoryAll,
		PriceRange:       PriceRange{Min: 0, Max: UnboundedPrice},
		ViewMode:         ViewGrid,
		Page:             1,
	}
}

// CacheKey renders every field that influences a projection. Text fields are
// quoted so delimiters inside them cannot collide.
func (s FilterState) CacheKey() string {
	return fmt.Sprintf("q=%q|cat=%q|f=%t,%t,%t|p=%d-%d|s=%q|v=%q|pg=%d|l=%d",
		strings.ToLower(strings.TrimSpace(s.SearchQuery)),
		s.SelectedCategory,
		s.Flags.FeaturedOnly, s.Flags.TrendingOnly, s.Flags.InStockOnly,
		s.PriceRange.Min, s.PriceRange.Max,
		s.SortKey,
		s.ViewMode,
		s.Page, s.Limit,
	)
}

// CatalogView is a projected listing: the items on the current page plus the
// counts behind "Showing X of Y".
type CatalogView struct {
	Items         []CatalogItem `json:"items"`
	FilteredCount int           `json:"filtered_count"`
	TotalCount    int           `json:"total_count"`
	Page          int           `json:"page"`
	Limit         int           `json:"limit"`
	TotalPages    int           `json:"total_pages"`
	ViewMode      ViewMode      `json:"view_mode"`
}
