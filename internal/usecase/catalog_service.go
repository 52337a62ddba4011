package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/basketmatch/backend/internal/domain"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// CatalogService answers "match this list against this retailer" with one
// call: it parses the raw text, resolves the retailer's catalog through the
// cache or the feed, and runs the matcher. The matching engine underneath
// stays pure; all I/O lives here.
type CatalogService struct {
	cache              domain.CacheRepository
	feed               domain.CatalogFeed
	parser             *ListParser
	matcher            *CatalogMatcher
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewCatalogService creates a catalog service with dependencies
func NewCatalogService(
	cache domain.CacheRepository,
	feed domain.CatalogFeed,
	vocab domain.Vocabulary,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &CatalogService{
		cache:              cache,
		feed:               feed,
		parser:             NewListParser(vocab, config.EnableDebugLogging),
		matcher:            NewCatalogMatcher(vocab, config.EnableDebugLogging),
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// MatchList parses a raw shopping list and matches it against one retailer's
// feed catalog. Flow: parse -> check cache -> fetch feed -> cache -> match.
func (s *CatalogService) MatchList(
	ctx context.Context,
	text, retailer string,
	mode Mode,
	allowSubstitutions bool,
) ([]domain.ItemMatches, error) {
	if text == "" || retailer == "" {
		return nil, domain.ErrInvalidRequest
	}
	if s.feed == nil {
		return nil, domain.ErrFeedUnavailable
	}

	items := s.parser.ParseUserList(text)
	if len(items) == 0 {
		return nil, domain.ErrEmptyList
	}

	catalog, err := s.catalogFor(ctx, retailer)
	if err != nil {
		return nil, err
	}

	return s.matcher.MatchAll(ctx, items, catalog, mode, MatchOptions{
		Retailer:           retailer,
		AllowSubstitutions: allowSubstitutions,
	})
}

// catalogFor resolves a retailer's catalog, preferring the cached snapshot
func (s *CatalogService) catalogFor(ctx context.Context, retailer string) ([]domain.CatalogEntry, error) {
	cacheKey := fmt.Sprintf("catalog:%s", retailer)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if catalog, ok := cached.([]domain.CatalogEntry); ok {
			if s.enableDebugLogging {
				log.Printf("[CATALOG] Cache hit for %q (%d entries)", retailer, len(catalog))
			}
			return catalog, nil
		}
	}

	catalog, err := s.feed.FetchCatalog(ctx, retailer)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, catalog, s.cacheTTL); err != nil {
		log.Printf("[CATALOG] Failed to cache catalog for %q: %v", retailer, err)
	}

	return catalog, nil
}
