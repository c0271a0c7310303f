package sentiment

import (
	"testing"

	"github.com/5676Arun/unicorn-vision/pkg/news"
	"github.com/go-playground/assert/v2"
)

func TestNormalizeRejectsMissingTitle(t *testing.T) {
	cases := []news.RawArticle{
		nil,
		{},
		{"title": ""},
		{"title": 42},
		{"description": "no title here"},
	}

	for _, raw := range cases {
		if _, ok := Normalize(raw); ok {
			t.Errorf("Normalize(%v) accepted a record without a usable title", raw)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	got, ok := Normalize(news.RawArticle{"title": "X"})

	assert.Equal(t, true, ok)
	assert.Equal(t, "X", got.Title)
	assert.Equal(t, "", got.Summary)
	assert.Equal(t, "Unknown", got.Source)
	assert.Equal(t, "", got.URL)
	assert.Equal(t, "", got.ImageURL)
	assert.Equal(t, "", got.PublishedAt)
}

func TestNormalizeFullRecord(t *testing.T) {
	raw := news.RawArticle{
		"title":       "Startup Raises Series B",
		"description": "A fintech startup closed a new round.",
		"url":         "https://example.com/series-b",
		"urlToImage":  "https://example.com/series-b.jpg",
		"publishedAt": "2026-02-26T11:02:00Z",
		"source":      map[string]any{"name": "TechWire"},
	}

	got, ok := Normalize(raw)

	assert.Equal(t, true, ok)
	assert.Equal(t, "Startup Raises Series B", got.Title)
	assert.Equal(t, "A fintech startup closed a new round.", got.Summary)
	assert.Equal(t, "TechWire", got.Source)
	assert.Equal(t, "https://example.com/series-b", got.URL)
	assert.Equal(t, "https://example.com/series-b.jpg", got.ImageURL)
	assert.Equal(t, "2026-02-26T11:02:00Z", got.PublishedAt)
}

func TestNormalizeBadSourceShape(t *testing.T) {
	got, ok := Normalize(news.RawArticle{"title": "X", "source": "not an object"})

	assert.Equal(t, true, ok)
	assert.Equal(t, "Unknown", got.Source)

	got, ok = Normalize(news.RawArticle{"title": "X", "source": map[string]any{"id": "abc"}})

	assert.Equal(t, true, ok)
	assert.Equal(t, "Unknown", got.Source)
}
