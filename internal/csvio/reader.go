// Package csvio reads and writes the translation sheets. Input files come
// from spreadsheet exports with uneven row widths and occasional stray
// quoting, so parsing is deliberately lenient.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// sampleSize bounds the slice of the file inspected for delimiter detection.
const sampleSize = 1024

// ReadFile reads all rows of a CSV file, detecting the delimiter from a
// leading sample.
func ReadFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return Parse(string(data))
}

// Parse parses CSV content into rows.
func Parse(content string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = DetectDelimiter(content)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

// DetectDelimiter inspects a sample of the content and picks the delimiter.
// Exports are comma-separated in practice; a sample dominated by semicolons
// or tabs outside quotes switches the delimiter, anything else stays comma.
func DetectDelimiter(content string) rune {
	sample := content
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	counts := map[rune]int{',': 0, ';': 0, '\t': 0}
	inQuotes := false
	for _, r := range sample {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case !inQuotes:
			if _, ok := counts[r]; ok {
				counts[r]++
			}
		}
	}

	best := ','
	for _, cand := range []rune{';', '\t'} {
		if counts[cand] > counts[best] {
			best = cand
		}
	}
	return best
}
