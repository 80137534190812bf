package service

import (
	"time"

	"golang.org/x/text/language"
)

// CellResult is the outcome of translating one cell. Unmatched terms are
// first-class data, not errors: a cell with unmatched terms still renders all
// of its known terms, with the Japanese substrings left in place.
type CellResult struct {
	Rendered  string
	Unmatched []string
}

// RowLayout names which input columns carry which content. Column roles are
// configuration owned by the shell; the core never infers them.
type RowLayout struct {
	DimensionsCol int // 0-based index of the dimensions column
	MaterialsCol  int // 0-based index of the materials column, -1 when absent
}

// DefaultLayout matches the original sheet format: dimensions in column A,
// materials in column B.
func DefaultLayout() RowLayout {
	return RowLayout{DimensionsCol: 0, MaterialsCol: 1}
}

// FormatOptions controls the optional output post-processing. All options
// default to off; the core contract preserves punctuation and width
// character-for-character unless asked otherwise.
type FormatOptions struct {
	ASCIIPunctuation bool // fold full-width punctuation, digits and letters
	SpaceAfterPunct  bool // insert a space after ")" "," ":" where missing
	SpaceBeforeUnits bool // separate material names from following numbers
}

// RunReport summarizes one translation pass over a CSV file.
type RunReport struct {
	InputPath    string
	OutputPath   string
	Rows         int
	Cells        int
	UnknownTerms []string
	LearnedTerms int
	SourceLang   language.Tag
	Duration     time.Duration
}
