// Package params parses the query strings shared by storefront and admin
// listing handlers.
package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/gin-gonic/gin"
)

const MaxLimit = 100

var ErrInvalidQuery = errors.New("invalid query parameter")

// Pagination reads page and limit. Out of range values fall back to the
// defaults rather than failing the request.
func Pagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxLimit {
		limit = defaultLimit
	}
	return page, limit
}

// FilterState builds a listing selection from the query string:
//
//	q, category, featured, trending, inStock, minPrice, maxPrice,
//	sortBy, view, page, limit
//
// Absent parameters keep the default state. limit=0 returns every item on a
// single page. Sort keys are validated later by the projection.
func FilterState(c *gin.Context, defaultLimit int) (models.FilterState, error) {
	state := models.DefaultFilterState()
	state.SearchQuery = c.Query("q")
	state.SortKey = models.SortKey(strings.TrimSpace(c.Query("sortBy")))

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		state.SelectedCategory = category
	}

	var err error
	if state.Flags.FeaturedOnly, err = boolParam(c, "featured"); err != nil {
		return state, err
	}
	if state.Flags.TrendingOnly, err = boolParam(c, "trending"); err != nil {
		return state, err
	}
	if state.Flags.InStockOnly, err = boolParam(c, "inStock"); err != nil {
		return state, err
	}

	if state.PriceRange.Min, err = priceParam(c, "minPrice", 0); err != nil {
		return state, err
	}
	if state.PriceRange.Max, err = priceParam(c, "maxPrice", models.UnboundedPrice); err != nil {
		return state, err
	}

	switch view := models.ViewMode(strings.ToLower(c.Query("view"))); view {
	case "":
	case models.ViewGrid, models.ViewList:
		state.ViewMode = view
	default:
		return state, fmt.Errorf("%w: view must be grid or list", ErrInvalidQuery)
	}

	if raw, ok := c.GetQuery("limit"); ok && strings.TrimSpace(raw) == "0" {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		state.Page = max(page, 1)
		state.Limit = 0
		return state, nil
	}
	state.Page, state.Limit = Pagination(c, defaultLimit)
	return state, nil
}

func boolParam(c *gin.Context, name string) (bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidQuery, name)
	}
	return v, nil
}

func priceParam(c *gin.Context, name string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative whole number", ErrInvalidQuery, name)
	}
	return v, nil
}

// Kind reads the :kind path parameter.
func Kind(c *gin.Context) (models.CatalogKind, bool) {
	return models.ParseCatalogKind(c.Param("kind"))
}
