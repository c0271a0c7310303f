package model

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// NormalizedArticle is a raw provider record reduced to the fields the
// pipeline reads, with defaults applied. Title is always non-empty.
type NormalizedArticle struct {
	Title       string
	Summary     string
	Source      string
	URL         string
	ImageURL    string
	PublishedAt string
}

// AnalyzedArticle is a normalized article after scoring. IDs are
// sequential within one report ("news-0", "news-1", ...) and count
// only articles that survived normalization.
type AnalyzedArticle struct {
	NormalizedArticle
	ID              string
	Sentiment       Sentiment
	Score           float64
	NormalizedScore int
}

type Keyword struct {
	Word      string
	Sentiment Sentiment
	Weight    float64
}

type SentimentReport struct {
	Overall  float64
	Articles []AnalyzedArticle
	Keywords []Keyword
}
