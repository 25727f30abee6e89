package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// Comparator resolves a sort key to a three-way comparison. The returned
// function owns a collator and must not be shared between goroutines.
func Comparator(key models.SortKey) (func(a, b models.CatalogItem) int, error) {
	byName := nameComparator()

	switch key {
	case models.SortDefault, "default":
		return func(a, b models.CatalogItem) int { return 0 }, nil
	case models.SortName:
		return byName, nil
	case models.SortPriceAsc:
		return func(a, b models.CatalogItem) int { return comparePrice(a, b, false) }, nil
	case models.SortPriceDesc:
		return func(a, b models.CatalogItem) int { return comparePrice(a, b, true) }, nil
	case models.SortRating:
		return func(a, b models.CatalogItem) int { return cmp.Compare(b.Rating, a.Rating) }, nil
	case models.SortPopularity:
		return func(a, b models.CatalogItem) int { return cmp.Compare(popularity(b), popularity(a)) }, nil
	case models.SortNewest:
		return func(a, b models.CatalogItem) int { return cmp.Compare(b.NewItems, a.NewItems) }, nil
	case models.SortFeatured:
		// (featured ? 0 : 1, name)
		return func(a, b models.CatalogItem) int {
			if c := cmp.Compare(featuredRank(a), featuredRank(b)); c != 0 {
				return c
			}
			return byName(a, b)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
}

// Sort orders items in place with a stable sort, so equal keys keep their
// input order.
func Sort(items []models.CatalogItem, key models.SortKey) error {
	compare, err := Comparator(key)
	if err != nil {
		return err
	}
	slices.SortStableFunc(items, compare)
	return nil
}

func nameComparator() func(a, b models.CatalogItem) int {
	col := collate.New(language.English, collate.Loose)
	return func(a, b models.CatalogItem) int {
		return col.CompareString(a.Name, b.Name)
	}
}

// Missing prices sort last in both directions.
func comparePrice(a, b models.CatalogItem, desc bool) int {
	switch {
	case !a.HasPrice() && !b.HasPrice():
		return 0
	case !a.HasPrice():
		return 1
	case !b.HasPrice():
		return -1
	}
	if desc {
		return cmp.Compare(*b.Price, *a.Price)
	}
	return cmp.Compare(*a.Price, *b.Price)
}

// Category records carry a popularity score; every other kind ranks by likes.
func popularity(item models.CatalogItem) int {
	if item.Kind == models.KindCategories {
		return item.PopularityScore
	}
	return item.Likes
}

func featuredRank(item models.CatalogItem) int {
	if item.Featured {
		return 0
	}
	return 1
}
