package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/5676Arun/unicorn-vision/internal/model"
	"github.com/gin-gonic/gin"
)

type SentimentService interface {
	GetResults(query string) (*model.SentimentReport, error)
	Healthcheck() error
}

type SentimentHandler struct {
	service SentimentService
}

func NewSentimentHandler(service SentimentService) *SentimentHandler {
	return &SentimentHandler{service: service}
}

func (h *SentimentHandler) GetSentiment(c *gin.Context) {
	h.respond(c, c.Query("q"))
}

func (h *SentimentHandler) PostSentiment(c *gin.Context) {
	var body struct {
		Query string `json:"query"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		slog.Error("error parsing request body", "error", err)
		c.JSON(http.StatusOK, ErrorResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	h.respond(c, body.Query)
}

// respond runs the pipeline for query. Both outcomes answer 200: the
// error envelope replaces the report body rather than the status code.
func (h *SentimentHandler) respond(c *gin.Context, query string) {
	report, err := h.service.GetResults(query)
	if err != nil {
		slog.Error("error aggregating sentiment", "query", query, "error", err)
		c.JSON(http.StatusOK, ErrorResponse{
			Status:    "error",
			Message:   err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}

func (h *SentimentHandler) GetHealth(c *gin.Context) {
	if err := h.service.Healthcheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"scorer": "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"scorer": "ready",
	})
}
