package sentiment

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/5676Arun/unicorn-vision/internal/model"
	"github.com/5676Arun/unicorn-vision/pkg/news"
	"github.com/5676Arun/unicorn-vision/pkg/polarity"
)

const maxKeywords = 10

type Engine struct {
	scorer polarity.Scorer
}

func NewEngine(scorer polarity.Scorer) *Engine {
	return &Engine{scorer: scorer}
}

// Aggregate turns a batch of raw provider records into a sentiment
// report. Records that fail normalization are dropped silently and do
// not consume an id slot. A scorer failure aborts the whole batch; no
// partial report is returned.
func (e *Engine) Aggregate(raw []news.RawArticle) (*model.SentimentReport, error) {
	articles := make([]model.AnalyzedArticle, 0, len(raw))
	total := 0

	for _, r := range raw {
		normalized, ok := Normalize(r)
		if !ok {
			continue
		}

		score, label, err := e.scoreText(normalized.Title)
		if err != nil {
			return nil, fmt.Errorf("scoring article %q: %w", normalized.Title, err)
		}

		// Truncated toward zero, matching the frontend's -100..100 scale.
		normalizedScore := int(score * 100)
		total += normalizedScore

		articles = append(articles, model.AnalyzedArticle{
			NormalizedArticle: *normalized,
			ID:                fmt.Sprintf("news-%d", len(articles)),
			Sentiment:         label,
			Score:             score,
			NormalizedScore:   normalizedScore,
		})
	}

	var overall float64
	if len(articles) > 0 {
		overall = float64(total) / float64(len(articles))
	}

	keywords, err := e.extractKeywords(articles)
	if err != nil {
		return nil, err
	}

	return &model.SentimentReport{
		Overall:  overall,
		Articles: articles,
		Keywords: keywords,
	}, nil
}

// extractKeywords collects up to maxKeywords distinct sentiment-bearing
// tokens from the analyzed titles, in article-then-token order.
// Scanning stops entirely once the cap is reached.
func (e *Engine) extractKeywords(articles []model.AnalyzedArticle) ([]model.Keyword, error) {
	keywords := make([]model.Keyword, 0, maxKeywords)
	used := make(map[string]struct{})

	for _, a := range articles {
		for _, token := range strings.Fields(strings.ToLower(a.Title)) {
			if len(keywords) >= maxKeywords {
				return keywords, nil
			}
			if !isKeywordToken(token) {
				continue
			}
			if _, seen := used[token]; seen {
				continue
			}
			used[token] = struct{}{}

			score, err := e.scorer.Polarity(token)
			if err != nil {
				return nil, fmt.Errorf("scoring keyword %q: %w", token, err)
			}

			keywords = append(keywords, model.Keyword{
				Word:      token,
				Sentiment: Classify(score),
				Weight:    math.Abs(score),
			})
		}
	}

	return keywords, nil
}

// isKeywordToken reports whether a token is all letters and longer
// than five runes.
func isKeywordToken(token string) bool {
	n := 0
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n > 5
}
