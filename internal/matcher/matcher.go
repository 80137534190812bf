package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/MimeLyc/garment-csv-translator/internal/dictionary"
)

// Edit replaces the byte span [Start, End) of the original line with
// Replacement. Edits produced by Match are non-overlapping and sorted by
// Start ascending.
type Edit struct {
	Start       int
	End         int
	Replacement string
}

// Match scans a single line left to right and returns the dictionary edits to
// apply plus the residual unmatched Japanese spans.
//
// At each position the longest dictionary key matching there wins. Numeric
// tokens (digits, optional decimal point, optional cm/mm/m suffix) are
// consumed whole before any key is tried, so a key can never swallow part of
// a number. Runs of Japanese script not covered by any key are reported as
// unmatched spans; everything else passes through untouched.
func Match(line string, dict dictionary.Dictionary) ([]Edit, []string) {
	keys := rankedKeys(dict)

	var edits []Edit
	var unmatched []string

	spanStart := -1
	flush := func(end int) {
		if spanStart >= 0 {
			unmatched = append(unmatched, line[spanStart:end])
			spanStart = -1
		}
	}

	i := 0
	for i < len(line) {
		if n := numericTokenLen(line[i:]); n > 0 {
			flush(i)
			i += n
			continue
		}

		if key, ok := longestKeyAt(line[i:], keys); ok {
			flush(i)
			edits = append(edits, Edit{
				Start:       i,
				End:         i + len(key),
				Replacement: dict[key],
			})
			i += len(key)
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		if IsTranslatable(r) {
			if spanStart < 0 {
				spanStart = i
			}
		} else {
			flush(i)
		}
		i += size
	}
	flush(len(line))

	return edits, unmatched
}

// rankedKeys orders dictionary keys longest first, ties broken
// lexicographically. Go maps have no iteration order, so a total order is the
// only way to keep matching deterministic. Empty keys are skipped.
func rankedKeys(dict dictionary.Dictionary) []string {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// longestKeyAt returns the longest ranked key that is a prefix of rest.
func longestKeyAt(rest string, keys []string) (string, bool) {
	for _, k := range keys {
		if strings.HasPrefix(rest, k) {
			return k, true
		}
	}
	return "", false
}
