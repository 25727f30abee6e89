package content

import (
	"testing"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedPages(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	page, ok := r.Find(models.SectionLegal, " Privacy-Policy ").Get()
	require.True(t, ok)
	assert.Equal(t, models.SectionLegal, page.Section)
	assert.NotEmpty(t, page.Body)

	assert.False(t, r.Find(models.SectionBlog, "privacy-policy").IsFound(), "slugs are scoped to their section")
	assert.False(t, r.Find(models.SectionLegal, "refund-policy").IsFound())

	assert.Len(t, r.List(models.SectionLegal), 3)

	posts := r.List(models.SectionBlog)
	require.Len(t, posts, 2)
	assert.Equal(t, "tingatinga-colour-stories", posts[0].Slug, "newest first")

	announcements := r.List(models.SectionAnnouncements)
	require.Len(t, announcements, 2)
	assert.False(t, announcements[0].PublishedAt.Before(announcements[1].PublishedAt))
}

func TestParseRejectsInvalidPages(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown section", "pages:\n  - {slug: a, section: faq, title: A}\n"},
		{"missing slug", "pages:\n  - {section: blog, title: A}\n"},
		{"missing title", "pages:\n  - {slug: a, section: blog}\n"},
		{"duplicate slug", "pages:\n  - {slug: a, section: blog, title: A}\n  - {slug: a, section: blog, title: B}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidPage)
		})
	}

	_, err := Parse([]byte("pages: [unterminated"))
	assert.Error(t, err)
}

func TestListUnknownSectionIsEmpty(t *testing.T) {
	r, err := Parse([]byte("pages: []\n"))
	require.NoError(t, err)
	assert.Empty(t, r.List(models.SectionBlog))
}
