package domain

// Pack describes the size structure parsed from a product name.
// Count is zero for a single size (e.g. "250g") and positive for a
// multi-pack (e.g. "4 x 42g").
type Pack struct {
	Count    int     `json:"count,omitempty"`
	UnitSize float64 `json:"unitSize"`
	Unit     string  `json:"unit"` // g, kg, ml, l, cl, pint
}

// ParsedItem is a shopping-list line broken into structured fields.
// Exactly one of Brand or OwnBrand is set, never both; both may be empty.
type ParsedItem struct {
	Raw       string   `json:"raw"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	LineTotal *float64 `json:"lineTotal,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Pack      *Pack    `json:"pack,omitempty"`
	Brand     string   `json:"brand,omitempty"`
	OwnBrand  string   `json:"ownBrand,omitempty"`
}

// CatalogEntry is one retailer's product listing.
type CatalogEntry struct {
	Retailer string  `json:"retailer"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	GTIN     string  `json:"gtin,omitempty"`
}

// MatchType identifies how a match was made
type MatchType string

const (
	MatchTypeExactGTIN MatchType = "exact_gtin"
	MatchTypeFuzzy     MatchType = "fuzzy"
)

// MatchResult pairs a parsed item with a catalog entry and a scoring decision.
// Score is unbounded: fuzzy-mode scores live in [0,1], strict-mode scores are
// additive point totals and may be negative.
type MatchResult struct {
	ItemIndex int       `json:"itemIndex"`
	Retailer  string    `json:"retailer"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Score     float64   `json:"score"`
	Accepted  bool      `json:"accepted"`
	MatchType MatchType `json:"matchType"`
}

// ItemMatches groups the match results for one parsed item.
// Confidence is the best qualifying score, 0 when nothing qualified.
type ItemMatches struct {
	ItemIndex  int           `json:"itemIndex"`
	Confidence float64       `json:"confidence"`
	Matches    []MatchResult `json:"matches"`
}
