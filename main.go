package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"newslens/api"
	"newslens/config"
	"newslens/fetcher"
	"newslens/models"
	"newslens/orchestrator"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	provider := models.NewProvider(models.Options{})
	orch := orchestrator.New(buildFetcher(), provider)

	r := api.NewRouter(orch)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/status")
	log.Println("  POST /api/synthesize")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildFetcher assembles the article source: Google News RSS, optionally
// enriched with full-content extraction (ENRICH_CONTENT=true) and wrapped
// with a Redis fetch cache when REDIS_ADDR points somewhere live.
func buildFetcher() orchestrator.Fetcher {
	var source fetcher.Source = fetcher.NewGoogleNews(config.DefaultMaxArticles)

	if strings.EqualFold(os.Getenv("ENRICH_CONTENT"), "true") {
		log.Println("Full-content enrichment enabled")
		source = fetcher.NewEnriched(source, config.DefaultEnrichThreshold)
	}

	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) == "" {
		return source
	}

	client, err := fetcher.NewRedisClientFromEnv()
	if err != nil {
		log.Printf("Warning: fetch cache disabled: %v", err)
		return source
	}

	log.Println("Fetch cache enabled")
	return fetcher.NewCached(source, client, config.DefaultFetchCacheTTL)
}
