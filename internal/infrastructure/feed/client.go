package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/basketmatch/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client pulls retailer catalog snapshots from the catalog feed service
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog feed client
func NewClient(apiKey, baseURL string) *Client {
	// The feed allows 600 requests per hour; 600/3600 ≈ 0.167 requests/sec
	limiter := rate.NewLimiter(rate.Limit(0.167), 10) // burst of 10 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait before retry attempt n (1-based)
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "BasketMatch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedFailure, err)
	}

	return resp, nil
}

// FetchCatalog retrieves one retailer's catalog from the feed
func (c *Client) FetchCatalog(ctx context.Context, retailer string) ([]domain.CatalogEntry, error) {
	if c.debug {
		log.Printf("[FEED] FetchCatalog called for retailer: %q", retailer)
	}

	endpoint := fmt.Sprintf("%s/v1/catalog", c.baseURL)
	params := url.Values{}
	params.Add("retailer", retailer)
	if c.apiKey != "" {
		params.Add("api_key", c.apiKey)
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[FEED] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		// Retry on 5xx; 404 means the retailer has no catalog
		if resp.StatusCode != http.StatusOK {
			log.Printf("[FEED] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrRetailerNotFound
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrFeedFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var feedResp catalogResponse
		if err := json.Unmarshal(body, &feedResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		catalog := MapToCatalog(retailer, feedResp.Products)
		if c.debug {
			log.Printf("[FEED] Fetched %d products for retailer: %q", len(catalog), retailer)
		}
		return catalog, nil
	}

	log.Printf("[FEED] All retries failed for retailer: %q", retailer)
	return nil, lastErr
}
