package models

import "time"

type ContentSection string

const (
	SectionLegal         ContentSection = "legal"
	SectionBlog          ContentSection = "blog"
	SectionAnnouncements ContentSection = "announcements"
)

// ContentPage is a static page addressed by slug within its section.
type ContentPage struct {
	Slug        string         `json:"slug" yaml:"slug"`
	Section     ContentSection `json:"section" yaml:"section"`
	Title       string         `json:"title" yaml:"title"`
	Summary     string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Author      string         `json:"author,omitempty" yaml:"author,omitempty"`
	Body        []string       `json:"body" yaml:"body"`
	PublishedAt time.Time      `json:"published_at" yaml:"published_at"`
}

type FavoritesResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

type ToggleFavoriteResponse struct {
	ID        string `json:"id"`
	Favorited bool   `json:"favorited"`
	Count     int    `json:"count"`
}
