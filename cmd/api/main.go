package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/5676Arun/unicorn-vision/internal/handler"
	"github.com/5676Arun/unicorn-vision/internal/sentiment"
	"github.com/5676Arun/unicorn-vision/pkg/news"
	"github.com/5676Arun/unicorn-vision/pkg/polarity"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	apiKey := os.Getenv("NEWS_API_KEY")
	if apiKey == "" {
		slog.Warn("NEWS_API_KEY is not set, fetches will return no articles")
	}

	scorer := polarity.NewVaderScorer()
	engine := sentiment.NewEngine(scorer)
	client := news.NewNewsAPIClient(apiKey)
	service := sentiment.NewService(client, engine)
	sentimentHandler := handler.NewSentimentHandler(service)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", sentimentHandler.GetSentiment)
	r.POST("/", sentimentHandler.PostSentiment)
	r.GET("/health", sentimentHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	slog.Info("starting sentiment analysis server", "port", port)

	err := r.Run("localhost:" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
