// Package content serves the static legal, blog and announcement pages.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/pages.yaml
var seedPages []byte

var ErrInvalidPage = errors.New("invalid content page")

type pagesFile struct {
	Pages []models.ContentPage `yaml:"pages"`
}

// Repository holds every page, indexed by section and slug.
type Repository struct {
	pages map[models.ContentSection]map[string]models.ContentPage
}

// Load parses the embedded pages.
func Load() (*Repository, error) {
	return Parse(seedPages)
}

func Parse(raw []byte) (*Repository, error) {
	var file pagesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse content pages: %w", err)
	}

	r := &Repository{pages: make(map[models.ContentSection]map[string]models.ContentPage)}
	for _, p := range file.Pages {
		switch p.Section {
		case models.SectionLegal, models.SectionBlog, models.SectionAnnouncements:
		default:
			return nil, fmt.Errorf("%w: %s has unknown section %q", ErrInvalidPage, p.Slug, p.Section)
		}
		if strings.TrimSpace(p.Slug) == "" || strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("%w: page needs a slug and a title", ErrInvalidPage)
		}
		if r.pages[p.Section] == nil {
			r.pages[p.Section] = make(map[string]models.ContentPage)
		}
		if _, dup := r.pages[p.Section][p.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %s in %s", ErrInvalidPage, p.Slug, p.Section)
		}
		r.pages[p.Section][p.Slug] = p
	}
	return r, nil
}

// Find looks a page up; unknown slugs are NotFound.
func (r *Repository) Find(section models.ContentSection, slug string) models.Lookup[models.ContentPage] {
	p, ok := r.pages[section][strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return models.NotFound[models.ContentPage]()
	}
	return models.Found(p)
}

// List returns a section's pages, newest first.
func (r *Repository) List(section models.ContentSection) []models.ContentPage {
	out := make([]models.ContentPage, 0, len(r.pages[section]))
	for _, p := range r.pages[section] {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b models.ContentPage) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return out
}

// Default returns the embedded pages, parsed once.
var Default = sync.OnceValue(func() *Repository {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
})
