package cache

import (
	"testing"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollection(t *testing.T, mode models.MatchMode, names ...string) *catalog.Collection {
	t.Helper()
	items := make([]models.CatalogItem, 0, len(names))
	for i, name := range names {
		items = append(items, models.CatalogItem{
			ID:       string(rune('a' + i)),
			Name:     name,
			Category: "Pottery",
			Price:    models.PriceOf(int64(1000 * (i + 1))),
		})
	}
	c, err := catalog.NewCollection(models.KindCrafts, models.CategorySet{"Pottery"}, mode, items)
	require.NoError(t, err)
	return c
}

func TestProjectionCacheExpiresByAge(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewProjectionCache(time.Minute, 10)
	c.now = func() time.Time { return now }

	view := models.CatalogView{FilteredCount: 2, TotalCount: 2}
	c.Set("k", view)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, view, got)

	now = now.Add(59 * time.Second)
	_, ok = c.Get("k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry at ttl age is stale")
}

func TestProjectionCacheEviction(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewProjectionCache(time.Minute, 2)
	c.now = func() time.Time { return now }

	c.Set("old", models.CatalogView{})
	now = now.Add(2 * time.Minute)
	c.Set("fresh", models.CatalogView{})

	// Full: the expired entry goes first.
	c.Set("new", models.CatalogView{})
	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("fresh")
	assert.True(t, ok)

	// Full with nothing expired: start over.
	c.Set("newer", models.CatalogView{})
	assert.Equal(t, 1, c.Len())
	_, ok = c.Get("newer")
	assert.True(t, ok)
}

func TestProjectionKeyDependencies(t *testing.T) {
	state := models.DefaultFilterState()
	base := testCollection(t, models.MatchExact, "Pot", "Bowl")

	assert.Equal(t, ProjectionKey(base, state), ProjectionKey(testCollection(t, models.MatchExact, "Pot", "Bowl"), state))

	edited := testCollection(t, models.MatchExact, "Pot", "Big Bowl")
	assert.NotEqual(t, ProjectionKey(base, state), ProjectionKey(edited, state), "content change")

	substring := testCollection(t, models.MatchSubstring, "Pot", "Bowl")
	assert.NotEqual(t, ProjectionKey(base, state), ProjectionKey(substring, state), "match mode")

	sorted := state
	sorted.SortKey = models.SortPriceAsc
	assert.NotEqual(t, ProjectionKey(base, state), ProjectionKey(base, sorted), "filter state")
}
