package sentiment

import (
	"log/slog"
	"strings"

	"github.com/5676Arun/unicorn-vision/internal/model"
	"github.com/5676Arun/unicorn-vision/pkg/news"
)

// defaultTopics back the fetch when no query is supplied.
var defaultTopics = []string{
	"startup success", "startup failure", "why startup is popular",
	"startup funding", "startup investment", "unicorn startup",
	"failed startup", "most successful startups", "venture capital",
}

type Service struct {
	client news.Client
	engine *Engine
}

func NewService(client news.Client, engine *Engine) *Service {
	return &Service{client: client, engine: engine}
}

// GetResults fetches articles for query (or the default topic set)
// and aggregates them. A fetch failure degrades to an empty batch and
// still yields a normal report; only aggregation failures propagate.
func (s *Service) GetResults(query string) (*model.SentimentReport, error) {
	if strings.TrimSpace(query) == "" {
		query = strings.Join(defaultTopics, " OR ")
	}

	articles, err := s.client.Search(query)
	if err != nil {
		slog.Error("error fetching news", "source", s.client.Name(), "error", err)
		articles = nil
	}

	return s.engine.Aggregate(articles)
}

// Healthcheck runs the scorer against a known token so the health
// endpoint can report whether the lexicon is usable.
func (s *Service) Healthcheck() error {
	_, _, err := s.engine.scoreText("startup")
	return err
}
