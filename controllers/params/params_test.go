package params

import (
	"net/http/httptest"
	"testing"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestFilterStateDefaults(t *testing.T) {
	state, err := FilterState(contextFor("/catalog/crafts"), 12)
	require.NoError(t, err)

	want := models.DefaultFilterState()
	want.Limit = 12
	assert.Equal(t, want, state)
}

func TestFilterStateFromQuery(t *testing.T) {
	state, err := FilterState(contextFor("/catalog/crafts?q=ebony&category=Wood+Carving&featured=true&inStock=1&minPrice=1000&maxPrice=90000&sortBy=price-asc&view=LIST&page=2&limit=5"), 12)
	require.NoError(t, err)

	assert.Equal(t, "ebony", state.SearchQuery)
	assert.Equal(t, "Wood Carving", state.SelectedCategory)
	assert.True(t, state.Flags.FeaturedOnly)
	assert.False(t, state.Flags.TrendingOnly)
	assert.True(t, state.Flags.InStockOnly)
	assert.Equal(t, models.PriceRange{Min: 1000, Max: 90000}, state.PriceRange)
	assert.Equal(t, models.SortPriceAsc, state.SortKey)
	assert.Equal(t, models.ViewList, state.ViewMode)
	assert.Equal(t, 2, state.Page)
	assert.Equal(t, 5, state.Limit)
}

func TestFilterStateUnpaginated(t *testing.T) {
	state, err := FilterState(contextFor("/catalog/crafts?limit=0&page=0"), 12)
	require.NoError(t, err)
	assert.Zero(t, state.Limit)
	assert.Equal(t, 1, state.Page)
}

func TestFilterStateRejectsMalformedValues(t *testing.T) {
	for _, query := range []string{
		"featured=yes",
		"trending=maybe",
		"minPrice=-5",
		"maxPrice=ten",
		"view=table",
	} {
		t.Run(query, func(t *testing.T) {
			_, err := FilterState(contextFor("/catalog/crafts?"+query), 12)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		query     string
		page, lim int
	}{
		{"", 1, 10},
		{"page=3&limit=20", 3, 20},
		{"page=-1&limit=500", 1, 10},
		{"page=x&limit=y", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page, limit := Pagination(contextFor("/products?"+tt.query), 10)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.lim, limit)
		})
	}
}

func TestKind(t *testing.T) {
	c := contextFor("/catalog/artisans")
	c.Params = gin.Params{{Key: "kind", Value: "artisans"}}
	kind, ok := Kind(c)
	assert.True(t, ok)
	assert.Equal(t, models.KindArtisans, kind)

	c.Params = gin.Params{{Key: "kind", Value: "paintings"}}
	_, ok = Kind(c)
	assert.False(t, ok)
}
