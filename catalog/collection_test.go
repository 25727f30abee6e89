package catalog

import (
	"testing"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCategories = models.CategorySet{"Pottery", "Textiles"}

func TestNewCollectionRejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		items []models.CatalogItem
	}{
		{"empty id", []models.CatalogItem{{ID: " ", Category: "Pottery"}}},
		{"negative price", []models.CatalogItem{{ID: "a", Category: "Pottery", Price: models.PriceOf(-1)}}},
		{"rating above five", []models.CatalogItem{{ID: "a", Category: "Pottery", Rating: 5.1}}},
		{"negative rating", []models.CatalogItem{{ID: "a", Category: "Pottery", Rating: -0.5}}},
		{"orphan category", []models.CatalogItem{{ID: "a", Category: "Jewellery"}}},
		{"duplicate id", []models.CatalogItem{{ID: "a", Category: "Pottery"}, {ID: "a", Category: "Textiles"}}},
		{"wrong kind", []models.CatalogItem{{ID: "a", Kind: models.KindArtisans, Category: "Pottery"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollection(models.KindCrafts, testCategories, models.MatchExact, tt.items)
			assert.ErrorIs(t, err, models.ErrInvalidCatalogItem)
		})
	}
}

func TestNewCollectionDefaults(t *testing.T) {
	c, err := NewCollection(models.KindCrafts, testCategories, "", []models.CatalogItem{
		{ID: "a", Name: "Pot", Category: "Pottery", Rating: 5},
		{ID: "b", Name: "Cloth", Category: "Textiles", Price: models.PriceOf(0)},
	})
	require.NoError(t, err)

	assert.Equal(t, models.MatchExact, c.MatchMode)
	assert.Equal(t, models.KindCrafts, c.Items[0].Kind)
	assert.Equal(t, models.ItemStatusApproved, c.Items[1].Status)
	assert.Equal(t, 1, c.Items[1].Position)
	assert.NotEmpty(t, c.Version)
}

func TestCollectionVersionTracksContent(t *testing.T) {
	items := []models.CatalogItem{{ID: "a", Name: "Pot", Category: "Pottery"}}
	a, err := NewCollection(models.KindCrafts, testCategories, models.MatchExact, items)
	require.NoError(t, err)
	b, err := NewCollection(models.KindCrafts, testCategories, models.MatchExact, items)
	require.NoError(t, err)
	assert.Equal(t, a.Version, b.Version)

	items[0].Name = "Big Pot"
	c, err := NewCollection(models.KindCrafts, testCategories, models.MatchExact, items)
	require.NoError(t, err)
	assert.NotEqual(t, a.Version, c.Version)
}

func TestCollectionFind(t *testing.T) {
	c := seedCollection(t, models.KindCrafts)

	item, ok := c.Find("craft-003").Get()
	require.True(t, ok)
	assert.Equal(t, "Beaded Jewelry Set", item.Name)

	assert.False(t, c.Find("craft-999").IsFound())
}

func TestCollectionFilters(t *testing.T) {
	c := seedCollection(t, models.KindCrafts)
	f := c.Filters()

	require.NotNil(t, f.PriceRange)
	assert.Equal(t, models.PriceRange{Min: 35000, Max: 125000}, *f.PriceRange)
	assert.Equal(t, models.CategoryAll, f.Categories[0].Value)
	assert.Equal(t, 6, f.Categories[0].Count)
	assert.Len(t, f.Categories, 7)
	assert.Equal(t, "exact", f.MatchMode)

	artisans := seedCollection(t, models.KindArtisans)
	assert.Nil(t, artisans.Filters().PriceRange, "artisans carry no prices")
}

func TestCollectionStats(t *testing.T) {
	c := seedCollection(t, models.KindCrafts)
	stats := c.Stats()

	assert.Equal(t, 6, stats.TotalItems)
	assert.Equal(t, 3, stats.FeaturedItems)
	assert.Equal(t, 5, stats.InStockItems)
	assert.Equal(t, 6, stats.ByStatus[models.ItemStatusApproved])
	assert.InDelta(t, 75000.0, stats.AveragePrice, 0.001)
}

func TestSeedMatchModeOverride(t *testing.T) {
	repo, err := LoadSeedRepository(map[models.CatalogKind]models.MatchMode{
		models.KindCrafts: models.MatchSubstring,
	})
	require.NoError(t, err)

	for _, c := range repo.Collections() {
		switch c.Kind {
		case models.KindCrafts, models.KindArtisans, models.KindCategories:
			assert.Equal(t, models.MatchSubstring, c.MatchMode, c.Kind)
		case models.KindFeatured:
			assert.Equal(t, models.MatchExact, c.MatchMode)
		}
	}
}
