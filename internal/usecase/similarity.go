package usecase

// Similarity scoring parameters
const (
	similarityPrefixLimit = 4   // shared-prefix characters that earn a boost
	similarityPrefixScale = 0.1 // boost per shared leading character
)

// Similarity computes a normalized string-similarity score in [0,1].
// It is symmetric, returns 1 for identical strings and 0 when either string
// is empty. Matching characters are counted within a bounded look-ahead
// window of floor(max(len)/2)-1 positions without replacement, transpositions
// among matched characters are penalized, and a shared prefix of up to four
// characters boosts the score toward 1. The prefix boost favours truncated
// or abbreviated product names that share early characters.
func Similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 || len(rb) == 0 {
		if len(ra) == 0 && len(rb) == 0 {
			return 1
		}
		return 0
	}

	window := max(len(ra), len(rb))/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))

	matches := 0
	for i := range ra {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > len(rb) {
			hi = len(rb)
		}
		for j := lo; j < hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	// Count transpositions among the matched characters
	transpositions := 0
	j := 0
	for i := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	score := (m/float64(len(ra)) + m/float64(len(rb)) + (m-float64(transpositions/2))/m) / 3

	// Shared-prefix boost: each leading character in common contributes a
	// fraction of the remaining distance to 1.0
	prefix := 0
	for i := 0; i < len(ra) && i < len(rb) && i < similarityPrefixLimit; i++ {
		if ra[i] != rb[i] {
			break
		}
		prefix++
	}

	return score + float64(prefix)*similarityPrefixScale*(1-score)
}
