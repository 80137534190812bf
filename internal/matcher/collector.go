package matcher

import "github.com/MimeLyc/garment-csv-translator/internal/dictionary"

// Collect runs the matcher over every line and returns the distinct unmatched
// terms in first-seen order. The stable order keeps the interactive learning
// prompt deterministic across runs. Single-rune and separator-only spans are
// not learnable and are dropped.
func Collect(lines []string, dict dictionary.Dictionary) []string {
	seen := make(map[string]struct{})
	var terms []string

	for _, line := range lines {
		_, unmatched := Match(line, dict)
		for _, span := range unmatched {
			if !learnable(span) {
				continue
			}
			if _, ok := seen[span]; ok {
				continue
			}
			seen[span] = struct{}{}
			terms = append(terms, span)
		}
	}

	return terms
}
