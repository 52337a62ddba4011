package usecase

import (
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/basketmatch/backend/internal/domain"
)

// Mode B scoring constants: strict single-retailer acceptance. These are
// empirical values preserved exactly for behavioral compatibility.
const (
	strictBrandBonus          = 40.0  // candidate first token equals the required brand
	strictBrandSubPenalty     = -30.0 // brand mismatch when substitutions are allowed
	strictOwnBrandSubPenalty  = -20.0 // own-brand mismatch when substitutions are allowed
	strictOverlapMax          = 30.0  // full token-overlap contribution
	strictSizeBonus           = 30.0  // candidate size within tolerance of the item size
	strictSizePenalty         = -15.0 // candidate size missing or out of tolerance
	strictABVBonus            = 10.0  // ABV within one percentage point
	strictABVSubPenalty       = -25.0 // ABV mismatch when substitutions are allowed
	strictAcceptThreshold     = 70.0  // acceptance bar without substitutions
	substituteAcceptThreshold = 40.0  // acceptance bar with substitutions allowed
	abvTolerance              = 1.0   // percentage points
)

// overlapStopwords are dropped from item-name tokens before overlap scoring
var overlapStopwords = map[string]bool{
	"the": true, "at": true, "and": true, "with": true,
	"for": true, "of": true, "in": true,
}

var (
	// Matches an alcohol-by-volume expression like "4.8%"
	abvRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

	// Strips non-alphanumeric characters from a token
	tokenStripRegex = regexp.MustCompile(`[^a-z0-9]`)

	// Matches a number with an optional size unit glued on ("415", "415g", "70cl")
	numericUnitTokenRegex = regexp.MustCompile(`^\d+(?:\.\d+)?(?:kg|g|ml|cl|l|pints?)?$`)
)

// StrictOptions controls a strict evaluation
type StrictOptions struct {
	TargetRetailer     string
	AllowSubstitutions bool
}

// StrictMatcher validates a specific candidate as a stand-in for a specific
// retailer. It is conservative by default: an accepted wrong product becomes
// a real monetary error in a user's basket, so without substitutions every
// hard factor mismatch rejects outright.
type StrictMatcher struct {
	vocab              domain.Vocabulary
	enableDebugLogging bool
}

// NewStrictMatcher creates a strict matcher with the given vocabulary
func NewStrictMatcher(vocab domain.Vocabulary, enableDebugLogging bool) *StrictMatcher {
	return &StrictMatcher{
		vocab:              vocab,
		enableDebugLogging: enableDebugLogging,
	}
}

// Evaluate scores one candidate against one item and decides acceptance.
// The score starts at 0 and is adjusted additively; with substitutions
// allowed the acceptance bar drops but mismatch penalties already suppressed
// the score, while strict mode requires near-complete factor agreement.
func (m *StrictMatcher) Evaluate(item *domain.ParsedItem, entry *domain.CatalogEntry, opts StrictOptions) (float64, bool) {
	score := 0.0
	titleFirst := firstWord(entry.Title)
	ownBrandTitle := m.isOwnBrandTitle(entry.Title, opts.TargetRetailer)

	if item.Brand != "" && !ownBrandTitle {
		switch {
		case strings.EqualFold(titleFirst, item.Brand):
			score += strictBrandBonus
		case !opts.AllowSubstitutions:
			m.debugReject(item, entry, "brand mismatch")
			return 0, false
		default:
			score += strictBrandSubPenalty
		}
	}

	if item.OwnBrand != "" {
		switch {
		case ownBrandTitle:
			score += strictBrandBonus
		case !opts.AllowSubstitutions:
			m.debugReject(item, entry, "own-brand mismatch")
			return 0, false
		default:
			score += strictOwnBrandSubPenalty
		}
	}

	score += m.overlapScore(item.Name, entry.Title)

	// Size compatibility only applies when the item carries a normalized
	// size; an unrecognized unit omits the factor rather than failing.
	if itemSize, itemAxis, ok := NormalizePack(item.Pack); ok {
		entrySize, entryAxis, entryOK := NormalizePack(ExtractPack(entry.Title))
		if entryOK && entryAxis == itemAxis && withinSizeTolerance(itemSize, entrySize) {
			score += strictSizeBonus
		} else {
			score += strictSizePenalty
		}
	}

	itemABV, itemHasABV := extractABV(item.Name)
	entryABV, entryHasABV := extractABV(entry.Title)
	if itemHasABV && entryHasABV {
		switch {
		case math.Abs(itemABV-entryABV) <= abvTolerance:
			score += strictABVBonus
		case !opts.AllowSubstitutions:
			m.debugReject(item, entry, "ABV mismatch")
			return 0, false
		default:
			score += strictABVSubPenalty
		}
	}

	threshold := strictAcceptThreshold
	if opts.AllowSubstitutions {
		threshold = substituteAcceptThreshold
	}

	ok := score >= threshold
	if m.enableDebugLogging {
		log.Printf("[MATCH] strict %q vs %q -> %.1f (threshold %.0f, ok=%v)", item.Name, entry.Title, score, threshold, ok)
	}
	return score, ok
}

// isOwnBrandTitle reports whether a candidate title reads as an own-brand
// product: generically own-brand (first token is any known retailer) or
// first token equal to the target retailer's name.
func (m *StrictMatcher) isOwnBrandTitle(title, targetRetailer string) bool {
	first := strings.ToLower(firstWord(title))
	firstAlpha := nonAlphaRegex.ReplaceAllString(first, "")

	if targetRetailer != "" {
		target := nonAlphaRegex.ReplaceAllString(strings.ToLower(targetRetailer), "")
		if firstAlpha == target {
			return true
		}
	}

	for _, retailer := range m.vocab.Retailers {
		if firstAlpha == nonAlphaRegex.ReplaceAllString(strings.ToLower(retailer), "") {
			return true
		}
	}

	return false
}

// overlapScore contributes up to strictOverlapMax proportional to the
// fraction of meaningful item-name tokens found in the candidate title.
func (m *StrictMatcher) overlapScore(itemName, title string) float64 {
	itemTokens := overlapTokens(itemName)
	if len(itemTokens) == 0 {
		return 0
	}

	titleSet := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(title)) {
		titleSet[tokenStripRegex.ReplaceAllString(token, "")] = true
	}

	matched := 0
	for _, token := range itemTokens {
		if titleSet[token] {
			matched++
		}
	}

	return strictOverlapMax * float64(matched) / float64(len(itemTokens))
}

// overlapTokens lowercases and strips item-name tokens, dropping stopwords
// and pure numeric/unit tokens that carry no product identity.
func overlapTokens(name string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(name)) {
		token := tokenStripRegex.ReplaceAllString(word, "")
		if token == "" || overlapStopwords[token] {
			continue
		}
		if numericUnitTokenRegex.MatchString(token) || isUnitToken(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// isUnitToken reports whether a bare token is a size unit word
func isUnitToken(token string) bool {
	_, ok := unitConversions[normalizeUnit(token)]
	return ok
}

// extractABV pulls an alcohol-by-volume percentage out of free text
func extractABV(text string) (float64, bool) {
	m := abvRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (m *StrictMatcher) debugReject(item *domain.ParsedItem, entry *domain.CatalogEntry, reason string) {
	if m.enableDebugLogging {
		log.Printf("[MATCH] strict %q vs %q rejected: %s", item.Name, entry.Title, reason)
	}
}
