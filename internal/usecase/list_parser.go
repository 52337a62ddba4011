package usecase

import (
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/basketmatch/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// Matches a trailing currency amount like "£1.80" anchored at line end
	trailingPriceRegex = regexp.MustCompile(`£\s*(\d+(?:\.\d+)?)\s*$`)

	// Matches a multi-pack size like "4 x 42g" or "6x330ml"
	multiPackRegex = regexp.MustCompile(`(?i)\b(\d+)\s*x\s*(\d+(?:\.\d+)?)\s*(kg|g|ml|cl|l|pints?)\b`)

	// Matches a single size like "415g", "70cl" or "2 pints"
	singlePackRegex = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(kg|g|ml|cl|l|pints?)\b`)

	// Keeps alphabetic characters only (own-brand tokens like "co-op" -> "coop")
	nonAlphaRegex = regexp.MustCompile(`[^a-z]`)
)

// ListParser turns raw shopping-list text into structured items. It holds no
// mutable state and is safe for concurrent use.
type ListParser struct {
	vocab              domain.Vocabulary
	enableDebugLogging bool
}

// NewListParser creates a list parser with the given vocabulary
func NewListParser(vocab domain.Vocabulary, enableDebugLogging bool) *ListParser {
	return &ListParser{
		vocab:              vocab,
		enableDebugLogging: enableDebugLogging,
	}
}

// ParseUserList splits text on line breaks, trims each line, drops blank
// lines and parses the rest. Lines that fail to parse are dropped without
// aborting the batch; surviving items keep input order.
func (p *ListParser) ParseUserList(text string) []domain.ParsedItem {
	var items []domain.ParsedItem

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		if item := p.ParseLine(line); item != nil {
			items = append(items, *item)
		}
	}

	return items
}

// ParseLine parses one shopping-list line into a structured item.
// Returns nil when the line cannot be parsed; a malformed line must never
// abort batch parsing, so any panic during parsing is recovered and logged.
func (p *ListParser) ParseLine(raw string) (item *domain.ParsedItem) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PARSE] Dropping malformed line %q: %v", raw, r)
			item = nil
		}
	}()

	rest := raw

	// Step 1: trailing currency amount
	var lineTotal *float64
	if m := trailingPriceRegex.FindStringSubmatchIndex(rest); m != nil {
		total, err := strconv.ParseFloat(rest[m[2]:m[3]], 64)
		if err == nil {
			lineTotal = &total
			rest = rest[:m[0]]
		}
	}

	// Step 2: trailing bare integer is a quantity multiplier
	quantity := 1
	tokens := strings.Fields(rest)
	if len(tokens) > 0 {
		if n, err := strconv.Atoi(tokens[len(tokens)-1]); err == nil && n >= 1 {
			quantity = n
			tokens = tokens[:len(tokens)-1]
		}
	}

	// Step 3: remaining tokens form the name
	name := strings.Join(tokens, " ")
	if name == "" {
		if p.enableDebugLogging {
			log.Printf("[PARSE] Dropping line with empty name: %q", raw)
		}
		return nil
	}

	item = &domain.ParsedItem{
		Raw:       raw,
		Name:      name,
		Quantity:  quantity,
		LineTotal: lineTotal,
	}

	if lineTotal != nil {
		unitPrice := math.Round(*lineTotal/float64(quantity)*100) / 100
		item.UnitPrice = &unitPrice
	}

	// Step 4: pack structure stays embedded in the name for scoring
	item.Pack = ExtractPack(name)

	// Step 5: own-brand signal wins over manufacturer brand; the two are
	// mutually exclusive on one item
	if own := p.detectOwnBrand(name); own != "" {
		item.OwnBrand = own
	} else if first := firstWord(name); len(first) > 2 {
		item.Brand = first
	}

	if p.enableDebugLogging {
		log.Printf("[PARSE] %q -> name=%q qty=%d brand=%q ownBrand=%q", raw, item.Name, item.Quantity, item.Brand, item.OwnBrand)
	}

	return item
}

// ExtractPack pulls a pack-size structure out of free text, testing the
// multi-pack pattern before falling back to a single size. Returns nil when
// no size expression is present.
func ExtractPack(text string) *domain.Pack {
	if m := multiPackRegex.FindStringSubmatch(text); m != nil {
		count, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		unitSize, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil
		}
		return &domain.Pack{Count: count, UnitSize: unitSize, Unit: normalizeUnit(m[3])}
	}

	if m := singlePackRegex.FindStringSubmatch(text); m != nil {
		unitSize, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		return &domain.Pack{UnitSize: unitSize, Unit: normalizeUnit(m[2])}
	}

	return nil
}

// detectOwnBrand tests the name against the retailer vocabulary. A retailer
// token appearing as a whitespace-delimited prefix or embedded word marks the
// item as own-brand; the returned token keeps alphabetic characters only.
func (p *ListParser) detectOwnBrand(name string) string {
	words := strings.Fields(strings.ToLower(name))

	for _, retailer := range p.vocab.Retailers {
		token := strings.ToLower(retailer)
		for _, word := range words {
			if word == token {
				return nonAlphaRegex.ReplaceAllString(token, "")
			}
		}
	}

	return ""
}

// firstWord returns the first whitespace-delimited word of s
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
