package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/auth"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/config"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/gemini"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/generate"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/retention"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.Load(); err != nil {
		log.Println("no .env loaded:", err)
	}
	if config.GeminiAPIKey() == "" {
		log.Println("warning: GEMINI_API_KEY not set; /api/visualize serves offline extractions")
	}
	if config.APIKey() == "" {
		log.Println("warning: MATHVIZ_API_KEY not set; API routes are open")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := os.MkdirAll(config.RunsDir(), 0o755); err != nil {
			c.JSON(500, gin.H{"status": "error", "error": "runs dir not writable"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----- API gated by key (X-API-Key or api_key query; open when unset) -----
	api := r.Group("/api")
	api.Use(auth.APIKey())
	{
		api.POST("/visualize", generate.VisualizeHandler(config.RunsDir(), config.RunsMax()))
		api.POST("/convert", generate.ConvertHandler())
		api.POST("/sample", generate.SampleHandler())
		api.GET("/defaults/:type", generate.DefaultsHandler())
		api.GET("/runs", generate.RunsIndexHandler(config.RunsDir()))
		api.GET("/runs/:id", generate.RunHandler(config.RunsDir()))
	}

	sweeper := retention.NewSweeper(config.RunsDir(), config.RunsMax(), config.CacheTTL())
	if err := sweeper.Start(config.RetentionSchedule()); err != nil {
		log.Println("retention sweeper not started:", err)
	}

	// Optional: run a one-off Gemini test if GEMINI_TEST=1
	if os.Getenv("GEMINI_TEST") == "1" {
		ctx := context.Background()
		_, err := gemini.Generate(ctx, gemini.GenerateRequest{UserPrompt: "Say hello in one sentence."})
		if err != nil {
			log.Println("gemini test:", err)
		}
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		if strings.HasPrefix(port, ":") {
			addr = port
		} else {
			addr = ":" + port
		}
	}

	if err := r.Run(addr); err != nil {
		sweeper.Stop()
		log.Fatal(err)
	}
}
