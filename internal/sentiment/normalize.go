package sentiment

import (
	"github.com/5676Arun/unicorn-vision/internal/model"
	"github.com/5676Arun/unicorn-vision/pkg/news"
)

// Normalize extracts the fields the pipeline reads from one untrusted
// provider record. Records without a non-empty string title are
// rejected; every other field defaults rather than failing.
func Normalize(raw news.RawArticle) (*model.NormalizedArticle, bool) {
	if raw == nil {
		return nil, false
	}

	title := stringField(raw, "title")
	if title == "" {
		return nil, false
	}

	source := "Unknown"
	if m, ok := raw["source"].(map[string]any); ok {
		if name, ok := m["name"].(string); ok {
			source = name
		}
	}

	return &model.NormalizedArticle{
		Title:       title,
		Summary:     stringField(raw, "description"),
		Source:      source,
		URL:         stringField(raw, "url"),
		ImageURL:    stringField(raw, "urlToImage"),
		PublishedAt: stringField(raw, "publishedAt"),
	}, true
}

func stringField(raw news.RawArticle, key string) string {
	s, _ := raw[key].(string)
	return s
}
