package sentiment

import (
	"strings"

	"github.com/5676Arun/unicorn-vision/internal/model"
)

// Classify maps a compound polarity score to a discrete label. The
// 0.2 boundaries are inclusive.
func Classify(score float64) model.Sentiment {
	switch {
	case score >= 0.2:
		return model.SentimentPositive
	case score <= -0.2:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// scoreText scores one span of text and labels it from the same
// score. Blank text is neutral and never reaches the scorer.
func (e *Engine) scoreText(text string) (float64, model.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return 0, model.SentimentNeutral, nil
	}

	score, err := e.scorer.Polarity(text)
	if err != nil {
		return 0, model.SentimentNeutral, err
	}

	return score, Classify(score), nil
}
