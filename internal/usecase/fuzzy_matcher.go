package usecase

import (
	"log"
	"math"
	"strings"

	"github.com/basketmatch/backend/internal/domain"
)

// Mode A scoring weights: catalog-wide fuzzy ranking for discovery/search.
// Preserved exactly for behavioral compatibility.
const (
	fuzzyTitleWeight     = 0.5 // title similarity share of the score
	fuzzyBrandBonus      = 0.2 // brand-token exact match against the candidate's brand
	fuzzySizeBonus       = 0.3 // normalized sizes on the same axis within tolerance
	fuzzyAcceptThreshold = 0.3 // minimum score to enter the ranked result set
	fuzzyTopK            = 3   // ranked matches returned per item
)

// sizeTolerance is the maximum relative size difference treated as compatible
const sizeTolerance = 0.10

// FuzzyMatcher ranks catalog entries against a parsed item using weighted
// title similarity with brand and size bonuses. It answers "what in this
// catalog looks like this item" and trades precision for coverage.
type FuzzyMatcher struct {
	vocab              domain.Vocabulary
	enableDebugLogging bool
}

// NewFuzzyMatcher creates a fuzzy matcher with the given vocabulary
func NewFuzzyMatcher(vocab domain.Vocabulary, enableDebugLogging bool) *FuzzyMatcher {
	return &FuzzyMatcher{
		vocab:              vocab,
		enableDebugLogging: enableDebugLogging,
	}
}

// Score computes the fuzzy score for one candidate. An exact GTIN substring
// match against the raw item text short-circuits to 1.0 with the exact_gtin
// match type; everything else is scored as a fuzzy match.
func (m *FuzzyMatcher) Score(item *domain.ParsedItem, entry *domain.CatalogEntry) (float64, domain.MatchType) {
	if entry.GTIN != "" && strings.Contains(item.Raw, entry.GTIN) {
		return 1.0, domain.MatchTypeExactGTIN
	}

	score := fuzzyTitleWeight * Similarity(strings.ToLower(item.Name), strings.ToLower(entry.Title))

	if item.Brand != "" {
		if entryBrand := m.extractBrand(entry.Title); strings.EqualFold(entryBrand, item.Brand) {
			score += fuzzyBrandBonus
		}
	}

	if itemSize, itemAxis, ok := NormalizePack(item.Pack); ok {
		if entrySize, entryAxis, ok := NormalizePack(ExtractPack(entry.Title)); ok {
			if entryAxis == itemAxis && withinSizeTolerance(itemSize, entrySize) {
				score += fuzzySizeBonus
			}
		}
	}

	if m.enableDebugLogging {
		log.Printf("[MATCH] fuzzy %q vs %q -> %.3f", item.Name, entry.Title, score)
	}

	return score, domain.MatchTypeFuzzy
}

// Rank scores every catalog entry for the item and returns up to three
// candidates above the acceptance threshold, best first. Confidence is the
// best score, 0 when nothing qualified.
func (m *FuzzyMatcher) Rank(item *domain.ParsedItem, catalog []domain.CatalogEntry) domain.ItemMatches {
	var candidates []domain.MatchResult

	for i := range catalog {
		entry := &catalog[i]
		score, matchType := m.Score(item, entry)
		if score <= fuzzyAcceptThreshold {
			continue
		}
		candidates = append(candidates, domain.MatchResult{
			Retailer:  entry.Retailer,
			Title:     entry.Title,
			Price:     entry.Price,
			Score:     score,
			Accepted:  true,
			MatchType: matchType,
		})
	}

	sortMatchesByScore(candidates)
	if len(candidates) > fuzzyTopK {
		candidates = candidates[:fuzzyTopK]
	}

	result := domain.ItemMatches{Matches: candidates}
	if len(candidates) > 0 {
		result.Confidence = candidates[0].Score
	}
	return result
}

// extractBrand looks up the first vocabulary brand appearing at the start of
// a catalog title. Returns "" when the title carries no recognized brand.
func (m *FuzzyMatcher) extractBrand(title string) string {
	lower := strings.ToLower(title)
	for _, brand := range m.vocab.Brands {
		if strings.HasPrefix(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return ""
}

// withinSizeTolerance reports whether candidate is within the relative
// tolerance of target. A candidate at exactly the tolerance boundary counts
// as compatible.
func withinSizeTolerance(target, candidate float64) bool {
	if target == 0 {
		return candidate == 0
	}
	return math.Abs(candidate-target)/target <= sizeTolerance
}
