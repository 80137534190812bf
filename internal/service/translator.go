package service

import (
	"fmt"
	"strings"

	"github.com/MimeLyc/garment-csv-translator/internal/dictionary"
	"github.com/MimeLyc/garment-csv-translator/internal/matcher"
	"github.com/MimeLyc/garment-csv-translator/internal/splitter"
)

// TranslateCell translates one cell against a dictionary snapshot. Each line
// is matched and rendered independently and rejoined with the original line
// breaks, so break style and count never change. Cells without any Japanese
// script come back untouched. Unmatched terms go through the collector, so
// they arrive deduplicated, in first-seen order, with unlearnable spans
// already dropped.
func TranslateCell(text string, dict dictionary.Dictionary) (CellResult, error) {
	if !matcher.ContainsJapanese(text) {
		return CellResult{Rendered: text}, nil
	}

	lines := strings.Split(text, "\n")
	rendered := make([]string, len(lines))

	for i, line := range lines {
		edits, _ := matcher.Match(line, dict)
		out, err := matcher.Render(line, edits)
		if err != nil {
			return CellResult{}, fmt.Errorf("render line %d: %w", i+1, err)
		}
		rendered[i] = out
	}

	return CellResult{
		Rendered:  strings.Join(rendered, "\n"),
		Unmatched: matcher.Collect(lines, dict),
	}, nil
}

// MaterialsCellResult carries the segmented translation of a materials cell.
// The country is passed through verbatim, untranslated.
type MaterialsCellResult struct {
	Materials   string
	MaterialsEN string
	Care        string
	CareEN      string
	Country     string
	Unmatched   []string
}

// TranslateMaterialsCell splits a composite materials cell and translates each
// segment with the dictionary appropriate to it: the general dictionary for
// materials, the care-label dictionary for instructions. Unmatched terms are
// only collected from the materials segment; care labels are a closed
// vocabulary maintained out of band.
func TranslateMaterialsCell(text string, snap dictionary.Snapshot) (MaterialsCellResult, error) {
	var res MaterialsCellResult

	for _, seg := range splitter.Split(text) {
		switch seg.Kind {
		case splitter.Materials:
			cell, err := TranslateCell(seg.Text, snap.General)
			if err != nil {
				return MaterialsCellResult{}, err
			}
			res.Materials = seg.Text
			res.MaterialsEN = cell.Rendered
			res.Unmatched = append(res.Unmatched, cell.Unmatched...)
		case splitter.CareInstructions:
			cell, err := TranslateCell(seg.Text, snap.Care)
			if err != nil {
				return MaterialsCellResult{}, err
			}
			res.Care = seg.Text
			res.CareEN = cell.Rendered
		case splitter.CountryOfOrigin:
			res.Country = seg.Text
		}
	}

	res.Unmatched = dedupe(res.Unmatched)
	return res, nil
}

// TranslateRow translates one CSV row into the output row shape. With a
// materials column the output is seven columns (A: Japanese dimensions,
// B: English dimensions, C: Japanese materials, D: English materials,
// E: Japanese care labels, F: English care labels, G: country); without one
// it degrades to two columns.
func TranslateRow(row []string, snap dictionary.Snapshot, layout RowLayout, opts FormatOptions) ([]string, []string, error) {
	if layout.DimensionsCol >= len(row) {
		return append([]string(nil), row...), nil, nil
	}

	dims := row[layout.DimensionsCol]
	dimsCell, err := TranslateCell(dims, snap.General)
	if err != nil {
		return nil, nil, fmt.Errorf("dimensions column: %w", err)
	}
	unknown := append([]string(nil), dimsCell.Unmatched...)

	if layout.MaterialsCol < 0 || layout.MaterialsCol >= len(row) {
		return []string{dims, Format(dimsCell.Rendered, opts)}, unknown, nil
	}

	mat, err := TranslateMaterialsCell(row[layout.MaterialsCol], snap)
	if err != nil {
		return nil, nil, fmt.Errorf("materials column: %w", err)
	}
	unknown = append(unknown, mat.Unmatched...)

	out := []string{
		dims,
		Format(dimsCell.Rendered, opts),
		strings.TrimSpace(mat.Materials),
		Format(strings.TrimSpace(mat.MaterialsEN), opts),
		strings.TrimSpace(mat.Care),
		Format(strings.TrimSpace(mat.CareEN), opts),
		strings.TrimSpace(mat.Country),
	}
	return out, dedupe(unknown), nil
}

func dedupe(terms []string) []string {
	if len(terms) < 2 {
		return terms
	}
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
