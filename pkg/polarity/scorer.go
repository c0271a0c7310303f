package polarity

import "github.com/jonreiter/govader"

// Scorer produces a compound polarity score in [-1, 1] for a span of
// text. Implementations must be safe for concurrent use.
type Scorer interface {
	Polarity(text string) (float64, error)
}

// VaderScorer wraps the VADER lexicon analyzer. The lexicon is loaded
// once at construction and never mutated, so one instance can be
// shared across requests.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Polarity(text string) (float64, error) {
	return s.analyzer.PolarityScores(text).Compound, nil
}
