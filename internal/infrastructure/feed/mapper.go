package feed

import (
	"strings"

	"github.com/basketmatch/backend/internal/domain"
)

// catalogResponse is the feed's catalog payload
type catalogResponse struct {
	Retailer string        `json:"retailer"`
	Products []feedProduct `json:"products"`
	Total    int           `json:"total"`
}

// feedProduct is one listing as the feed serves it. Prices arrive in pence.
type feedProduct struct {
	Title      string `json:"title"`
	PricePence int    `json:"pricePence"`
	GTIN       string `json:"gtin,omitempty"`
}

// MapToCatalog converts feed products to domain catalog entries, dropping
// records without a usable title
func MapToCatalog(retailer string, products []feedProduct) []domain.CatalogEntry {
	catalog := make([]domain.CatalogEntry, 0, len(products))
	for _, p := range products {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			continue
		}
		catalog = append(catalog, domain.CatalogEntry{
			Retailer: retailer,
			Title:    title,
			Price:    float64(p.PricePence) / 100,
			GTIN:     strings.TrimSpace(p.GTIN),
		})
	}
	return catalog
}
