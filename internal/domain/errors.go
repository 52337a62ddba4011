package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmptyList is returned when no shopping-list lines survive parsing
	ErrEmptyList = errors.New("no parseable lines in shopping list")

	// ErrRetailerNotFound is returned when the feed has no catalog for a retailer
	ErrRetailerNotFound = errors.New("retailer not found in catalog feed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrFeedFailure is returned when a catalog feed request fails
	ErrFeedFailure = errors.New("catalog feed request failed")

	// ErrFeedUnavailable is returned when no catalog feed is configured
	ErrFeedUnavailable = errors.New("catalog feed not configured")
)
