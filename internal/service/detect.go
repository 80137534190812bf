package service

import (
	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// detectSampleLimit caps how many cells language detection looks at.
const detectSampleLimit = 200

// DetectSourceLanguage detects the dominant language across the input cells.
// Detection is informational only (reports, logs); translation correctness
// never depends on it.
func DetectSourceLanguage(rows [][]string) language.Tag {
	langCount := make(map[string]int)
	sampled := 0

	for _, row := range rows {
		for _, cell := range row {
			if cell == "" {
				continue
			}
			lang := whatlanggo.DetectLang(cell).Iso6391()
			langCount[lang]++
			sampled++
			if sampled >= detectSampleLimit {
				break
			}
		}
		if sampled >= detectSampleLimit {
			break
		}
	}

	var topLang string
	var topCount int
	for lang, count := range langCount {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}
	if topLang == "" {
		return language.Und
	}

	return language.Make(topLang)
}
