package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/basketmatch/backend/internal/domain"
)

// Mode selects the scoring policy applied across the catalog
type Mode string

const (
	// ModeFuzzy ranks the whole catalog per item (discovery/search)
	ModeFuzzy Mode = "fuzzy"
	// ModeStrict validates every candidate as an acceptable stand-in
	// (basket-fill validation)
	ModeStrict Mode = "strict"
)

// MatchOptions controls a MatchAll call
type MatchOptions struct {
	// Retailer pre-filters the catalog and is the target for strict
	// own-brand validation. Empty means the whole catalog.
	Retailer string
	// AllowSubstitutions relaxes strict acceptance (lower bar, penalties
	// instead of outright rejection)
	AllowSubstitutions bool
}

// CatalogMatcher orchestrates an evaluator mode across a full catalog.
// It holds no cross-call state: every call is independent and reentrant, and
// per-item evaluation is pure so callers may partition the work across
// goroutines without locking.
type CatalogMatcher struct {
	fuzzy  *FuzzyMatcher
	strict *StrictMatcher
}

// NewCatalogMatcher creates a catalog matcher with both evaluator modes
func NewCatalogMatcher(vocab domain.Vocabulary, enableDebugLogging bool) *CatalogMatcher {
	return &CatalogMatcher{
		fuzzy:  NewFuzzyMatcher(vocab, enableDebugLogging),
		strict: NewStrictMatcher(vocab, enableDebugLogging),
	}
}

// MatchAll evaluates every item against every catalog entry in O(items x
// catalog) and returns one ItemMatches per item, in item order. Fuzzy mode
// returns up to three ranked accepted candidates per item; strict mode
// returns an accept/reject decision for every candidate.
func (m *CatalogMatcher) MatchAll(
	ctx context.Context,
	items []domain.ParsedItem,
	catalog []domain.CatalogEntry,
	mode Mode,
	opts MatchOptions,
) ([]domain.ItemMatches, error) {
	if opts.Retailer != "" {
		catalog = filterByRetailer(catalog, opts.Retailer)
	}

	results := make([]domain.ItemMatches, 0, len(items))
	for i := range items {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var matches domain.ItemMatches
		switch mode {
		case ModeStrict:
			matches = m.matchStrict(&items[i], catalog, opts)
		default:
			matches = m.fuzzy.Rank(&items[i], catalog)
		}

		matches.ItemIndex = i
		for j := range matches.Matches {
			matches.Matches[j].ItemIndex = i
		}
		results = append(results, matches)
	}

	return results, nil
}

// matchStrict evaluates every candidate for one item under Mode B
func (m *CatalogMatcher) matchStrict(item *domain.ParsedItem, catalog []domain.CatalogEntry, opts MatchOptions) domain.ItemMatches {
	strictOpts := StrictOptions{
		TargetRetailer:     opts.Retailer,
		AllowSubstitutions: opts.AllowSubstitutions,
	}

	result := domain.ItemMatches{Matches: make([]domain.MatchResult, 0, len(catalog))}
	for i := range catalog {
		entry := &catalog[i]
		score, ok := m.strict.Evaluate(item, entry, strictOpts)
		result.Matches = append(result.Matches, domain.MatchResult{
			Retailer:  entry.Retailer,
			Title:     entry.Title,
			Price:     entry.Price,
			Score:     score,
			Accepted:  ok,
			MatchType: domain.MatchTypeFuzzy,
		})
		if ok && score > result.Confidence {
			result.Confidence = score
		}
	}
	return result
}

// filterByRetailer returns the catalog entries for one retailer
func filterByRetailer(catalog []domain.CatalogEntry, retailer string) []domain.CatalogEntry {
	filtered := make([]domain.CatalogEntry, 0, len(catalog))
	for _, entry := range catalog {
		if strings.EqualFold(entry.Retailer, retailer) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// sortMatchesByScore orders matches best first. Exact GTIN matches win ties
// so a barcode hit always outranks an equally scored fuzzy candidate.
func sortMatchesByScore(matches []domain.MatchResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].MatchType == domain.MatchTypeExactGTIN && matches[j].MatchType != domain.MatchTypeExactGTIN
	})
}
