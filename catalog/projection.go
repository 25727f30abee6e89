package catalog

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
)

// Project runs the listing pipeline: filter, stable sort, then slice the
// requested page. The result is recomputed from scratch on every call.
func Project(items []models.CatalogItem, state models.FilterState, mode models.MatchMode) (models.CatalogView, error) {
	filtered := Filter(items, state, mode)
	if err := Sort(filtered, state.SortKey); err != nil {
		return models.CatalogView{}, err
	}

	view := models.CatalogView{
		FilteredCount: len(filtered),
		TotalCount:    len(items),
		ViewMode:      state.ViewMode,
		Page:          1,
		Limit:         state.Limit,
	}
	if view.ViewMode == "" {
		view.ViewMode = models.ViewGrid
	}

	if state.Limit <= 0 {
		view.Items = filtered
		view.Limit = 0
		if len(filtered) > 0 {
			view.TotalPages = 1
		}
		return view, nil
	}

	page := state.Page
	if page < 1 {
		page = 1
	}
	view.Page = page
	view.TotalPages = (len(filtered) + state.Limit - 1) / state.Limit

	start := (page - 1) * state.Limit
	if start >= len(filtered) {
		view.Items = make([]models.CatalogItem, 0)
		return view, nil
	}
	end := start + state.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	view.Items = filtered[start:end]
	return view, nil
}

// ProjectCollection projects a collection with its configured match mode.
func ProjectCollection(c *Collection, state models.FilterState) (models.CatalogView, error) {
	return Project(c.Items, state, c.MatchMode)
}
