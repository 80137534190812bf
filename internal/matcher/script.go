package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// unitTokens are the measurement units recognized after a number. Ordered
// longest first so "mm"/"cm" win over "m".
var unitTokens = []string{"cm", "mm", "m"}

// IsTranslatable reports whether a rune is a translatable candidate: part of
// Japanese script (hiragana, katakana or a CJK ideograph). Digits, Latin
// letters, punctuation (half or full width) and whitespace are never
// candidates. The prolonged sound mark is script-neutral in Unicode but only
// appears inside katakana words, so it counts as a candidate too.
func IsTranslatable(r rune) bool {
	if r == 'ー' {
		return true
	}
	return unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Han, r)
}

// ContainsJapanese reports whether any rune in s is a translatable candidate.
func ContainsJapanese(s string) bool {
	for _, r := range s {
		if IsTranslatable(r) {
			return true
		}
	}
	return false
}

// numericTokenLen returns the byte length of a numeric token at the start of
// s: a digit sequence, an optional decimal point with more digits, and an
// optional unit suffix. Returns 0 if s does not start with a digit.
func numericTokenLen(s string) int {
	n := digitRun(s, 0)
	if n == 0 {
		return 0
	}
	if n < len(s) && s[n] == '.' {
		if m := digitRun(s, n+1); m > 0 {
			n += 1 + m
		}
	}
	for _, unit := range unitTokens {
		if strings.HasPrefix(s[n:], unit) {
			n += len(unit)
			break
		}
	}
	return n
}

func digitRun(s string, from int) int {
	n := 0
	for from+n < len(s) && s[from+n] >= '0' && s[from+n] <= '9' {
		n++
	}
	return n
}

// learnable reports whether an unmatched span should be surfaced for
// learning. Single-rune spans are dropped: one kanji alone is too ambiguous
// to assign a translation out of context.
func learnable(span string) bool {
	return utf8.RuneCountInString(span) > 1 && !separatorOnly(span)
}

// separatorOnly reports whether the span consists solely of separator
// punctuation. The matcher never emits such spans; this guards the collector
// against future scan changes.
func separatorOnly(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSpace(r) && r != '：' && r != '※' {
			return false
		}
	}
	return true
}
