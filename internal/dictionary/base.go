package dictionary

// Base returns the built-in dictionary of garment measurement and material
// terms. The returned map is a fresh copy and safe to extend.
func Base() Dictionary {
	return baseTerms.Clone()
}

var baseTerms = Dictionary{
	// Basic measurements
	"総丈":    "Total Length",
	"股下":    "Inseam",
	"身幅":    "Body Width",
	"裄丈":    "Sleeve Length",
	"フード丈":  "Hood Length",
	"フード幅":  "Hood Width",
	"肩幅":    "Shoulder Width",
	"胸囲":    "Chest",
	"ウエスト":  "Waist",
	"ヒップ":   "Hip",
	"袖丈":    "Sleeve Length",
	"袖口":    "Cuff",
	"裾幅":    "Hem Width",
	"股上":    "Rise",
	"太もも":   "Thigh",
	"膝下":    "Knee",
	"足首":    "Ankle",

	// Generic measurement terms
	"丈": "Length",
	"幅": "Width",

	// Unit tokens are kept as-is so they survive learned-overlay merges
	"cm":   "cm",
	"mm":   "mm",
	"m":    "m",
	"100%": "100%",

	// Common materials
	"コットン":     "Cotton",
	"綿":        "Cotton",
	"ポリエステル":   "Polyester",
	"ナイロン":     "Nylon",
	"ウール":      "Wool",
	"シルク":      "Silk",
	"レーヨン":     "Rayon",
	"アクリル":     "Acrylic",
	"スパンデックス": "Spandex",
	"エラスタン":    "Elastane",
	"リネン":      "Linen",
	"カシミア":     "Cashmere",
	"モヘア":      "Mohair",
	"アルパカ":     "Alpaca",
	"混紡":       "Blend",

	// Fabric construction terms
	"表生地":  "Main Fabric",
	"裏生地":  "Lining Fabric",
	"刺繍糸":  "Embroidery Thread",
	"再生繊維": "Regenerated Fiber",
	"セルロース": "Cellulose",
	"ポリウレタン": "Polyurethane",
}
