// Package splitter partitions a composite materials cell into materials,
// care-instruction and country-of-origin segments using structural markers
// rather than fixed line positions.
package splitter

import "strings"

// SegmentKind classifies a segment of a materials cell.
type SegmentKind int

const (
	Materials SegmentKind = iota
	CareInstructions
	CountryOfOrigin
)

func (k SegmentKind) String() string {
	switch k {
	case Materials:
		return "materials"
	case CareInstructions:
		return "care_instructions"
	case CountryOfOrigin:
		return "country_of_origin"
	}
	return "unknown"
}

// Segment is a contiguous sub-block of the source cell. Segments returned by
// Split are non-overlapping and concatenate, in order, back to the exact
// source block.
type Segment struct {
	Kind SegmentKind
	Text string
}

// careMarker starts a care-instruction line.
const careMarker = "※"

// Split partitions a block into at most three segments. The scan is a single
// pass: materials until the first line containing the care marker, care
// instructions from there on, and a trailing country line when the last
// non-empty line matches a known country name. A block without any marker
// comes back as a single Materials segment; Split never fails.
func Split(block string) []Segment {
	if block == "" {
		return nil
	}

	chunks := splitKeepNewlines(block)

	careFrom := -1
	for i, c := range chunks {
		if strings.Contains(c, careMarker) {
			careFrom = i
			break
		}
	}
	if careFrom < 0 {
		return []Segment{{Kind: Materials, Text: block}}
	}

	// Within the care region, the country segment starts at the last
	// non-empty line, and only when that line names a country.
	lastIdx := -1
	for i := careFrom; i < len(chunks); i++ {
		if strings.TrimSpace(trimNewline(chunks[i])) != "" {
			lastIdx = i
		}
	}
	countryFrom := -1
	if lastIdx >= 0 {
		line := strings.TrimSpace(trimNewline(chunks[lastIdx]))
		if !strings.HasPrefix(line, careMarker) && IsCountryLine(line) {
			countryFrom = lastIdx
		}
	}

	var segments []Segment
	appendSegment := func(kind SegmentKind, from, to int) {
		if from >= to {
			return
		}
		segments = append(segments, Segment{
			Kind: kind,
			Text: strings.Join(chunks[from:to], ""),
		})
	}

	if countryFrom < 0 {
		appendSegment(Materials, 0, careFrom)
		appendSegment(CareInstructions, careFrom, len(chunks))
		return segments
	}

	appendSegment(Materials, 0, careFrom)
	appendSegment(CareInstructions, careFrom, countryFrom)
	appendSegment(CountryOfOrigin, countryFrom, len(chunks))
	return segments
}

// splitKeepNewlines cuts a block into lines with their trailing "\n" kept, so
// joining the chunks reproduces the block byte for byte.
func splitKeepNewlines(block string) []string {
	var chunks []string
	for {
		i := strings.IndexByte(block, '\n')
		if i < 0 {
			if block != "" {
				chunks = append(chunks, block)
			}
			return chunks
		}
		chunks = append(chunks, block[:i+1])
		block = block[i+1:]
	}
}

func trimNewline(chunk string) string {
	chunk = strings.TrimSuffix(chunk, "\n")
	return strings.TrimSuffix(chunk, "\r")
}
