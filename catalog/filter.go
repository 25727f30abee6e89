package catalog

import (
	"strings"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
)

// Matches reports whether item is part of the result set for state. It is a
// pure function of its arguments; every clause must hold.
func Matches(item models.CatalogItem, state models.FilterState, mode models.MatchMode) bool {
	return matchesQuery(item, state.SearchQuery) &&
		matchesCategory(item, state.SelectedCategory, mode) &&
		matchesFlags(item, state.Flags) &&
		matchesPrice(item, state.PriceRange)
}

// Filter keeps the matching items in their original order. The source slice
// is never modified.
func Filter(items []models.CatalogItem, state models.FilterState, mode models.MatchMode) []models.CatalogItem {
	out := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if Matches(item, state, mode) {
			out = append(out, item)
		}
	}
	return out
}

func matchesQuery(item models.CatalogItem, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{item.Name, item.Category, item.Location, item.ArtisanName, item.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func matchesCategory(item models.CatalogItem, selected string, mode models.MatchMode) bool {
	if selected == "" || strings.EqualFold(selected, models.CategoryAll) {
		return true
	}
	if mode == models.MatchSubstring {
		return strings.Contains(strings.ToLower(item.Category), strings.ToLower(selected))
	}
	return item.Category == selected
}

func matchesFlags(item models.CatalogItem, flags models.FlagFilters) bool {
	if flags.FeaturedOnly && !item.Featured {
		return false
	}
	if flags.TrendingOnly && !item.Trending {
		return false
	}
	if flags.InStockOnly && !item.InStock {
		return false
	}
	return true
}

// Items without a price are never excluded by the price range.
func matchesPrice(item models.CatalogItem, r models.PriceRange) bool {
	if !item.HasPrice() {
		return true
	}
	return *item.Price >= r.Min && *item.Price <= r.Max
}
