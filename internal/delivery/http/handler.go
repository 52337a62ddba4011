package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/basketmatch/backend/internal/domain"
	"github.com/basketmatch/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalogService *usecase.CatalogService
	parser         *usecase.ListParser
	matcher        *usecase.CatalogMatcher
}

// NewHandler creates a new HTTP handler. catalogService may be nil when no
// feed is configured; the feed-backed endpoint then returns 503 and the
// inline endpoints keep working.
func NewHandler(catalogService *usecase.CatalogService, vocab domain.Vocabulary, enableDebugLogging bool) *Handler {
	return &Handler{
		catalogService: catalogService,
		parser:         usecase.NewListParser(vocab, enableDebugLogging),
		matcher:        usecase.NewCatalogMatcher(vocab, enableDebugLogging),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "basketmatch-backend",
		"version": "1.0.0",
	})
}

// parseListRequest is the request body for ParseList
type parseListRequest struct {
	List string `json:"list" binding:"required"`
}

// ParseList tokenizes a raw shopping list into structured items
func (h *Handler) ParseList(c *gin.Context) {
	var req parseListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list is required"})
		return
	}

	items := h.parser.ParseUserList(req.List)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list contains no parseable lines"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// matchInlineRequest is the request body for MatchInline. The caller supplies
// the catalog in the request, so no feed round-trip is involved.
type matchInlineRequest struct {
	List               string                `json:"list" binding:"required"`
	Catalog            []domain.CatalogEntry `json:"catalog" binding:"required"`
	Mode               string                `json:"mode"`
	Retailer           string                `json:"retailer"`
	AllowSubstitutions bool                  `json:"allowSubstitutions"`
}

// MatchInline matches a shopping list against a caller-supplied catalog
func (h *Handler) MatchInline(c *gin.Context) {
	var req matchInlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list and catalog are required"})
		return
	}

	mode, ok := resolveMode(req.Mode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be 'fuzzy' or 'strict'"})
		return
	}

	items := h.parser.ParseUserList(req.List)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list contains no parseable lines"})
		return
	}

	results, err := h.matcher.MatchAll(c.Request.Context(), items, req.Catalog, mode, usecase.MatchOptions{
		Retailer:           req.Retailer,
		AllowSubstitutions: req.AllowSubstitutions,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "matching failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   items,
		"results": results,
	})
}

// matchFeedRequest is the request body for MatchFeed
type matchFeedRequest struct {
	List               string `json:"list" binding:"required"`
	Retailer           string `json:"retailer" binding:"required"`
	Mode               string `json:"mode"`
	AllowSubstitutions bool   `json:"allowSubstitutions"`
}

// MatchFeed matches a shopping list against a retailer's live feed catalog
func (h *Handler) MatchFeed(c *gin.Context) {
	if h.catalogService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog feed not configured"})
		return
	}

	var req matchFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list and retailer are required"})
		return
	}

	mode, ok := resolveMode(req.Mode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be 'fuzzy' or 'strict'"})
		return
	}

	results, err := h.catalogService.MatchList(c.Request.Context(), req.List, req.Retailer, mode, req.AllowSubstitutions)
	if err != nil {
		status, message := feedErrorResponse(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"retailer": req.Retailer,
		"mode":     string(mode),
		"results":  results,
	})
}

// resolveMode maps the request mode string to a matcher mode, defaulting to
// fuzzy when unset
func resolveMode(mode string) (usecase.Mode, bool) {
	switch mode {
	case "", "fuzzy":
		return usecase.ModeFuzzy, true
	case "strict":
		return usecase.ModeStrict, true
	default:
		return "", false
	}
}

// feedErrorResponse maps domain errors to HTTP status codes
func feedErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "list and retailer are required"
	case errors.Is(err, domain.ErrEmptyList):
		return http.StatusBadRequest, "list contains no parseable lines"
	case errors.Is(err, domain.ErrRetailerNotFound):
		return http.StatusNotFound, "retailer not found in feed"
	case errors.Is(err, domain.ErrFeedUnavailable):
		return http.StatusServiceUnavailable, "catalog feed not configured"
	case errors.Is(err, domain.ErrFeedFailure):
		return http.StatusBadGateway, "catalog feed temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
