package usecase

import (
	"strings"

	"github.com/basketmatch/backend/internal/domain"
)

// SizeAxis is the canonical measurement axis a pack size normalizes to.
type SizeAxis string

const (
	AxisGrams       SizeAxis = "g"
	AxisMillilitres SizeAxis = "ml"
)

// unitConversion maps a pack unit to its canonical axis and multiplier.
type unitConversion struct {
	axis   SizeAxis
	factor float64
}

var unitConversions = map[string]unitConversion{
	"g":    {AxisGrams, 1},
	"kg":   {AxisGrams, 1000},
	"ml":   {AxisMillilitres, 1},
	"l":    {AxisMillilitres, 1000},
	"cl":   {AxisMillilitres, 10},
	"pint": {AxisMillilitres, 568},
}

// NormalizePack converts a pack structure to a single base-unit quantity on
// one canonical axis (grams or millilitres). A multi-pack's total is
// count x unit_size before conversion. Returns ok=false when the pack is
// absent or carries an unrecognized unit; callers must treat that as
// "size unknown", never as zero.
func NormalizePack(pack *domain.Pack) (float64, SizeAxis, bool) {
	if pack == nil {
		return 0, "", false
	}

	conv, found := unitConversions[normalizeUnit(pack.Unit)]
	if !found {
		return 0, "", false
	}

	total := pack.UnitSize
	if pack.Count > 0 {
		total *= float64(pack.Count)
	}

	return total * conv.factor, conv.axis, true
}

// normalizeUnit lowercases a unit token and folds plural pints to "pint"
func normalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "pints" {
		u = "pint"
	}
	return u
}
