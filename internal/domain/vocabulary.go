package domain

// Vocabulary holds the retailer tokens used for own-brand detection and the
// brand tokens used for brand extraction from catalog titles. It is injected
// into the parsing and matching services so new regions/retailers can be
// supported through configuration rather than code changes.
type Vocabulary struct {
	Retailers []string
	Brands    []string
}

// DefaultVocabulary returns the built-in UK retailer and brand token lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Retailers: []string{
			"asda", "tesco", "sainsbury's", "morrisons", "waitrose",
			"aldi", "lidl", "iceland", "co-op", "ocado",
		},
		Brands: []string{
			"heinz", "branston", "kellogg's", "hovis", "warburtons",
			"cadbury", "walkers", "mcvitie's", "birds eye", "mccain",
			"lurpak", "anchor", "muller", "yeo valley", "cathedral city",
			"coca-cola", "pepsi", "robinsons", "ribena", "innocent",
			"nescafe", "kenco", "pg tips", "tetley", "yorkshire tea",
			"stella artois", "budweiser", "guinness", "carling", "fosters",
			"fairy", "persil", "ariel", "comfort", "andrex",
		},
	}
}
