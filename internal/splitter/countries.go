package splitter

import "strings"

// countryNames are the origin countries that appear on garment labels sold in
// the Japanese market.
var countryNames = map[string]struct{}{
	"中国":       {},
	"日本":       {},
	"ベトナム":     {},
	"カンボジア":    {},
	"ミャンマー":    {},
	"インドネシア":   {},
	"タイ":       {},
	"バングラデシュ":  {},
	"インド":      {},
	"韓国":       {},
	"台湾":       {},
	"フィリピン":    {},
	"マレーシア":    {},
	"スリランカ":    {},
}

// originPrefixes may precede the country name on the origin line.
var originPrefixes = []string{"原産国", "生産国", "製造国"}

// IsCountryLine reports whether a trimmed line is a country-of-origin token:
// either a bare country name or one prefixed like "原産国：中国".
func IsCountryLine(line string) bool {
	if _, ok := countryNames[line]; ok {
		return true
	}
	for _, prefix := range originPrefixes {
		rest, found := strings.CutPrefix(line, prefix)
		if !found {
			continue
		}
		rest = strings.TrimLeft(rest, "：: 　")
		if _, ok := countryNames[rest]; ok {
			return true
		}
		// "日本製" style suffix lines
		if strings.HasSuffix(rest, "製") {
			if _, ok := countryNames[strings.TrimSuffix(rest, "製")]; ok {
				return true
			}
		}
	}
	if strings.HasSuffix(line, "製") {
		if _, ok := countryNames[strings.TrimSuffix(line, "製")]; ok {
			return true
		}
	}
	return false
}
