package usecase

import (
	"testing"

	"github.com/basketmatch/backend/internal/domain"
)

func newTestFuzzyMatcher() *FuzzyMatcher {
	return NewFuzzyMatcher(domain.DefaultVocabulary(), false)
}

func TestFuzzyScore(t *testing.T) {
	m := newTestFuzzyMatcher()

	t.Run("gtin substring short-circuits to exact match", func(t *testing.T) {
		item := &domain.ParsedItem{Raw: "Heinz Baked Beans 5000157024671", Name: "Heinz Baked Beans 5000157024671"}
		entry := &domain.CatalogEntry{Title: "Something Entirely Different", GTIN: "5000157024671"}

		score, matchType := m.Score(item, entry)
		if score != 1.0 {
			t.Errorf("score = %v, want 1.0", score)
		}
		if matchType != domain.MatchTypeExactGTIN {
			t.Errorf("matchType = %v, want exact_gtin", matchType)
		}
	})

	t.Run("identical title scores half weight", func(t *testing.T) {
		item := &domain.ParsedItem{Raw: "baked beans", Name: "baked beans"}
		entry := &domain.CatalogEntry{Title: "Baked Beans"}

		score, matchType := m.Score(item, entry)
		if score != fuzzyTitleWeight {
			t.Errorf("score = %v, want %v", score, fuzzyTitleWeight)
		}
		if matchType != domain.MatchTypeFuzzy {
			t.Errorf("matchType = %v, want fuzzy", matchType)
		}
	})

	t.Run("brand bonus requires matching catalog brand", func(t *testing.T) {
		withBrand := &domain.ParsedItem{Raw: "Heinz Baked Beans", Name: "Heinz Baked Beans", Brand: "Heinz"}
		withoutBrand := &domain.ParsedItem{Raw: "Heinz Baked Beans", Name: "Heinz Baked Beans"}
		entry := &domain.CatalogEntry{Title: "Heinz Baked Beans"}

		branded, _ := m.Score(withBrand, entry)
		plain, _ := m.Score(withoutBrand, entry)
		if diff := branded - plain; diff < fuzzyBrandBonus-1e-9 || diff > fuzzyBrandBonus+1e-9 {
			t.Errorf("brand bonus = %v, want %v", diff, fuzzyBrandBonus)
		}
	})

	t.Run("no brand bonus for unrecognized catalog brand", func(t *testing.T) {
		item := &domain.ParsedItem{Raw: "Zanzibar Beans", Name: "Zanzibar Beans", Brand: "Zanzibar"}
		entry := &domain.CatalogEntry{Title: "Zanzibar Beans"}

		score, _ := m.Score(item, entry)
		if score != fuzzyTitleWeight {
			t.Errorf("score = %v, want %v (no bonus without vocabulary brand)", score, fuzzyTitleWeight)
		}
	})

	t.Run("size bonus within ten percent", func(t *testing.T) {
		item := &domain.ParsedItem{
			Raw:  "Baked Beans 400g",
			Name: "Baked Beans 400g",
			Pack: &domain.Pack{UnitSize: 400, Unit: "g"},
		}
		near := &domain.CatalogEntry{Title: "Baked Beans 415g"}
		exact := &domain.CatalogEntry{Title: "Baked Beans 400g"}
		boundary := &domain.CatalogEntry{Title: "Baked Beans 440g"}
		far := &domain.CatalogEntry{Title: "Baked Beans 500g"}

		if score, _ := m.Score(item, exact); score <= fuzzySizeBonus {
			t.Errorf("exact size score = %v, want bonus applied", score)
		}
		nearScore, _ := m.Score(item, near)
		farScore, _ := m.Score(item, far)
		if nearScore-farScore < fuzzySizeBonus-0.1 {
			t.Errorf("near = %v, far = %v, want size bonus separating them", nearScore, farScore)
		}
		boundaryScore, _ := m.Score(item, boundary)
		if boundaryScore-farScore < fuzzySizeBonus-0.1 {
			t.Errorf("size at exactly 10%% difference should still earn the bonus (boundary=%v far=%v)", boundaryScore, farScore)
		}
	})

	t.Run("no size bonus across axes", func(t *testing.T) {
		item := &domain.ParsedItem{
			Raw:  "Squash 400g",
			Name: "Squash 400g",
			Pack: &domain.Pack{UnitSize: 400, Unit: "g"},
		}
		entry := &domain.CatalogEntry{Title: "Squash 400ml"}

		score, _ := m.Score(item, entry)
		if score > fuzzyTitleWeight+1e-9 {
			t.Errorf("score = %v, want no size bonus across g/ml axes", score)
		}
	})
}

func TestFuzzyRank(t *testing.T) {
	m := newTestFuzzyMatcher()

	t.Run("returns at most three above threshold", func(t *testing.T) {
		item := &domain.ParsedItem{Raw: "baked beans", Name: "baked beans"}
		catalog := []domain.CatalogEntry{
			{Title: "Baked Beans", Price: 0.90},
			{Title: "Baked Beans 415g", Price: 0.95},
			{Title: "Baked Beanz", Price: 0.85},
			{Title: "Beans Baked", Price: 0.80},
			{Title: "Baked Bean", Price: 0.75},
		}

		result := m.Rank(item, catalog)
		if len(result.Matches) != fuzzyTopK {
			t.Fatalf("len(matches) = %d, want %d", len(result.Matches), fuzzyTopK)
		}
		for i := 1; i < len(result.Matches); i++ {
			if result.Matches[i].Score > result.Matches[i-1].Score {
				t.Errorf("matches not sorted descending: %v", result.Matches)
			}
		}
		if result.Confidence != result.Matches[0].Score {
			t.Errorf("Confidence = %v, want best score %v", result.Confidence, result.Matches[0].Score)
		}
	})

	t.Run("empty result when nothing qualifies", func(t *testing.T) {
		item := &domain.ParsedItem{Raw: "milk", Name: "milk"}
		catalog := []domain.CatalogEntry{
			{Title: "zzz"},
			{Title: "qqq"},
		}

		result := m.Rank(item, catalog)
		if len(result.Matches) != 0 {
			t.Errorf("matches = %v, want none", result.Matches)
		}
		if result.Confidence != 0 {
			t.Errorf("Confidence = %v, want 0", result.Confidence)
		}
	})

	t.Run("gtin match ranked first regardless of fuzzy scores", func(t *testing.T) {
		item := &domain.ParsedItem{
			Raw:   "Heinz Baked Beans 415g 5000157024671",
			Name:  "Heinz Baked Beans 415g 5000157024671",
			Brand: "Heinz",
			Pack:  &domain.Pack{UnitSize: 415, Unit: "g"},
		}
		catalog := []domain.CatalogEntry{
			{Title: "Heinz Baked Beans 415g 5000157024671", Price: 0.95},
			{Title: "Value Beans", GTIN: "5000157024671", Price: 0.40},
		}

		result := m.Rank(item, catalog)
		if len(result.Matches) == 0 {
			t.Fatal("expected matches")
		}
		first := result.Matches[0]
		if first.MatchType != domain.MatchTypeExactGTIN {
			t.Errorf("first match type = %v, want exact_gtin", first.MatchType)
		}
		if first.Score != 1.0 {
			t.Errorf("first score = %v, want 1.0", first.Score)
		}
		if first.Title != "Value Beans" {
			t.Errorf("first title = %q, want the GTIN match", first.Title)
		}
	})
}
