package matcher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOverlap signals that a set of edits violates the non-overlap invariant.
// Match can never produce such a set; hitting this means a programming error,
// and the caller should abort the current cell rather than guess a repair.
var ErrOverlap = errors.New("overlapping edits")

// Render applies edits to a single line, preserving every byte not covered by
// an edit. Edits must be sorted by Start ascending, in bounds, and
// non-overlapping.
func Render(line string, edits []Edit) (string, error) {
	var b strings.Builder
	pos := 0
	for _, e := range edits {
		if e.Start < pos || e.End < e.Start || e.End > len(line) {
			return "", fmt.Errorf("%w: edit [%d,%d) at position %d", ErrOverlap, e.Start, e.End, pos)
		}
		b.WriteString(line[pos:e.Start])
		b.WriteString(e.Replacement)
		pos = e.End
	}
	b.WriteString(line[pos:])
	return b.String(), nil
}
