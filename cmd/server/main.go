package main

import (
	"fmt"
	"log"
	"os"

	"github.com/basketmatch/backend/config"
	httpDelivery "github.com/basketmatch/backend/internal/delivery/http"
	"github.com/basketmatch/backend/internal/domain"
	"github.com/basketmatch/backend/internal/infrastructure/cache"
	"github.com/basketmatch/backend/internal/infrastructure/feed"
	"github.com/basketmatch/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting BasketMatch Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Vocabulary: built-in retailers/brands plus configured extras
	vocab := domain.DefaultVocabulary()
	vocab.Retailers = append(vocab.Retailers, cfg.Vocabulary.ExtraRetailers...)
	vocab.Brands = append(vocab.Brands, cfg.Vocabulary.ExtraBrands...)
	log.Printf("Vocabulary: %d retailers, %d brands", len(vocab.Retailers), len(vocab.Brands))

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// The catalog feed is optional: without a base URL the feed-backed
	// endpoint returns 503 and inline matching still works.
	var catalogService *usecase.CatalogService
	if cfg.Feed.BaseURL != "" {
		feedClient := feed.NewClient(cfg.Feed.APIKey, cfg.Feed.BaseURL)
		if cfg.Server.Environment == "development" {
			feedClient.SetDebug(true)
			log.Printf("Feed client debug mode enabled")
		}
		log.Printf("Catalog feed configured: %s", cfg.Feed.BaseURL)

		catalogService = usecase.NewCatalogService(
			memoryCache,
			feedClient,
			vocab,
			usecase.CatalogServiceConfig{
				CacheTTL:           cfg.Cache.TTL,
				EnableDebugLogging: cfg.Matching.EnableDebugLogging,
			},
		)
	} else {
		log.Printf("WARNING: No catalog feed base URL configured - feed endpoint disabled")
	}

	log.Printf("Matching: debug=%v", cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, vocab, cfg.Matching.EnableDebugLogging)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
