package catalog

import (
	"errors"
	"testing"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricesOf(items []models.CatalogItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, item := range items {
		if item.Price == nil {
			out = append(out, -1)
			continue
		}
		out = append(out, *item.Price)
	}
	return out
}

func TestSortCraftsByPriceAscending(t *testing.T) {
	c := seedCollection(t, models.KindCrafts)
	items := append([]models.CatalogItem(nil), c.Items...)

	require.NoError(t, Sort(items, models.SortPriceAsc))
	assert.Equal(t, []int64{35000, 45000, 65000, 85000, 95000, 125000}, pricesOf(items))
}

func TestSortMissingPriceLastBothDirections(t *testing.T) {
	items := []models.CatalogItem{
		{ID: "a", Name: "a"},
		{ID: "b", Name: "b", Price: models.PriceOf(200)},
		{ID: "c", Name: "c", Price: models.PriceOf(100)},
		{ID: "d", Name: "d"},
	}

	asc := append([]models.CatalogItem(nil), items...)
	require.NoError(t, Sort(asc, models.SortPriceAsc))
	assert.Equal(t, []int64{100, 200, -1, -1}, pricesOf(asc))
	assert.Equal(t, "a", asc[2].ID)
	assert.Equal(t, "d", asc[3].ID)

	desc := append([]models.CatalogItem(nil), items...)
	require.NoError(t, Sort(desc, models.SortPriceDesc))
	assert.Equal(t, []int64{200, 100, -1, -1}, pricesOf(desc))
}

func TestSortByNameIsLocaleAware(t *testing.T) {
	items := []models.CatalogItem{
		{Name: "zawadi"},
		{Name: "Émile"},
		{Name: "amani"},
		{Name: "Baraka"},
	}
	require.NoError(t, Sort(items, models.SortName))
	assert.Equal(t, []string{"amani", "Baraka", "Émile", "zawadi"}, names(items))
}

func TestSortFeaturedUsesNameAsSecondaryKey(t *testing.T) {
	items := []models.CatalogItem{
		{Name: "Pot", Featured: false},
		{Name: "Carving", Featured: true},
		{Name: "Basket", Featured: false},
		{Name: "Anklet", Featured: true},
	}
	require.NoError(t, Sort(items, models.SortFeatured))
	assert.Equal(t, []string{"Anklet", "Carving", "Basket", "Pot"}, names(items))
}

func TestSortPopularityPerKind(t *testing.T) {
	categories := seedCollection(t, models.KindCategories)
	items := append([]models.CatalogItem(nil), categories.Items...)
	require.NoError(t, Sort(items, models.SortPopularity))
	assert.Equal(t, "Wood Carvings", items[0].Name, "categories rank by popularity score")

	crafts := seedCollection(t, models.KindCrafts)
	items = append([]models.CatalogItem(nil), crafts.Items...)
	require.NoError(t, Sort(items, models.SortPopularity))
	assert.Equal(t, "Makonde Ebony Carving", items[0].Name, "crafts rank by likes")
}

func TestSortNewestByNewItems(t *testing.T) {
	c := seedCollection(t, models.KindCategories)
	items := append([]models.CatalogItem(nil), c.Items...)
	require.NoError(t, Sort(items, models.SortNewest))
	assert.Equal(t, []string{"Jewellery", "Textiles", "Baskets", "Wood Carvings", "Paintings", "Pottery"}, names(items))
}

func TestSortIsStableForEveryKey(t *testing.T) {
	// Every item ties on every key; output must equal input order.
	tied := make([]models.CatalogItem, 0, 5)
	for _, id := range []string{"first", "second", "third", "fourth", "fifth"} {
		tied = append(tied, models.CatalogItem{
			ID:              id,
			Kind:            models.KindCrafts,
			Name:            "Same Name",
			Price:           models.PriceOf(1000),
			Rating:          4.5,
			Likes:           10,
			NewItems:        3,
			PopularityScore: 50,
			Featured:        true,
		})
	}

	keys := append([]models.SortKey{models.SortDefault}, models.SortKeys...)
	for _, key := range keys {
		t.Run(string(key), func(t *testing.T) {
			items := append([]models.CatalogItem(nil), tied...)
			require.NoError(t, Sort(items, key))
			for i := range tied {
				assert.Equal(t, tied[i].ID, items[i].ID)
			}
		})
	}
}

func TestSortRatingTiesKeepInsertionOrder(t *testing.T) {
	c := seedCollection(t, models.KindCrafts)
	items := append([]models.CatalogItem(nil), c.Items...)
	require.NoError(t, Sort(items, models.SortRating))

	// Tingatinga (craft-002) and the sisal basket (craft-006) both rate 4.8.
	assert.Equal(t, []string{"craft-001", "craft-002", "craft-006", "craft-003", "craft-005", "craft-004"},
		func() []string {
			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			return ids
		}())
}

func TestSortUnknownKey(t *testing.T) {
	err := Sort([]models.CatalogItem{{Name: "x"}}, "cheapest")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSortKey))
}
