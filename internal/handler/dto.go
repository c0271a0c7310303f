package handler

import "github.com/5676Arun/unicorn-vision/internal/model"

// The success payload deliberately carries no status or timestamp;
// only the error payload does. Consumers rely on this shape.

type ReportResponse struct {
	Overall  float64           `json:"overall"`
	Articles []ArticleResponse `json:"articles"`
	Keywords []KeywordResponse `json:"keywords"`
}

type ArticleResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Summary         string  `json:"summary"`
	Source          string  `json:"source"`
	URL             string  `json:"url"`
	ImageURL        string  `json:"imageUrl"`
	PublishedAt     string  `json:"time"`
	Sentiment       string  `json:"sentiment"`
	Score           float64 `json:"score"`
	NormalizedScore int     `json:"normalizedScore"`
}

type KeywordResponse struct {
	Word      string  `json:"word"`
	Sentiment string  `json:"sentiment"`
	Weight    float64 `json:"weight"`
}

type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

func toReportResponse(r *model.SentimentReport) ReportResponse {
	articles := make([]ArticleResponse, 0, len(r.Articles))
	for _, a := range r.Articles {
		articles = append(articles, ArticleResponse{
			ID:              a.ID,
			Title:           a.Title,
			Summary:         a.Summary,
			Source:          a.Source,
			URL:             a.URL,
			ImageURL:        a.ImageURL,
			PublishedAt:     a.PublishedAt,
			Sentiment:       string(a.Sentiment),
			Score:           a.Score,
			NormalizedScore: a.NormalizedScore,
		})
	}

	keywords := make([]KeywordResponse, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		keywords = append(keywords, KeywordResponse{
			Word:      k.Word,
			Sentiment: string(k.Sentiment),
			Weight:    k.Weight,
		})
	}

	return ReportResponse{
		Overall:  r.Overall,
		Articles: articles,
		Keywords: keywords,
	}
}
