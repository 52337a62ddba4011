package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogFeed defines the interface for pulling a retailer's catalog from an
// external feed. The matching engine itself never fetches; this is the
// collaborator that supplies it with catalog entries.
type CatalogFeed interface {
	FetchCatalog(ctx context.Context, retailer string) ([]CatalogEntry, error)
}
