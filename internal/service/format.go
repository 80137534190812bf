package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// foldExceptions are folded before the generic width transform, where the
// narrow form alone would read badly in English output.
var foldExceptions = strings.NewReplacer(
	"～", " to ", // ～ between two measurements
	"、", ",",
	"。", ".",
)

// Format applies the optional post-processing steps to translated English
// text. With the zero options it returns the input unchanged.
func Format(text string, opts FormatOptions) string {
	if opts.ASCIIPunctuation {
		text = foldWidth(text)
	}
	if opts.SpaceAfterPunct {
		text = spaceAfterPunct(text)
	}
	if opts.SpaceBeforeUnits {
		text = spaceBeforeNumbers(text)
	}
	return text
}

// foldWidth converts full-width punctuation, digits and Latin letters to
// their half-width forms. Japanese script is untouched: width.Narrow has no
// narrow mapping for kana or ideographs beyond the halfwidth-katakana forms,
// which never appear in rendered English output.
func foldWidth(text string) string {
	return width.Narrow.String(foldExceptions.Replace(text))
}

// spaceAfterPunct inserts a space after ")" "," ":" when the next character
// is not already whitespace or a line break.
func spaceAfterPunct(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if r != ')' && r != ',' && r != ':' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// spaceBeforeNumbers separates a material name from a directly following
// number, e.g. "Cotton100%" becomes "Cotton 100%".
func spaceBeforeNumbers(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	var prev rune
	for _, r := range text {
		if prev >= 'a' && prev <= 'z' || prev >= 'A' && prev <= 'Z' {
			if r >= '0' && r <= '9' {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
