package news

// RawArticle is one article record as returned by a provider. The
// shape is untrusted: callers must not assume any key is present or
// holds the expected type.
type RawArticle map[string]any

type Client interface {
	Search(query string) ([]RawArticle, error)
	Name() string
}
