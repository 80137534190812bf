package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MimeLyc/garment-csv-translator/internal/dictionary"
)

func baseSnapshot() dictionary.Snapshot {
	return dictionary.Snapshot{
		General: dictionary.Base(),
		Care: dictionary.Dictionary{
			"※洗濯機で洗えます":      "※Machine Washable",
			"※漂白剤は使用しないでください": "※Do Not Use Bleach",
			"手洗い":            "Hand Wash",
		},
	}
}

func TestTranslateCell_DimensionLines(t *testing.T) {
	res, err := TranslateCell("a）総丈：66.2cm\nフード丈：26.5cm", dictionary.Base())

	require.NoError(t, err)
	assert.Equal(t, "a）Total Length：66.2cm\nHood Length：26.5cm", res.Rendered)
	assert.Empty(t, res.Unmatched)
}

func TestTranslateCell_LongestKeyWins(t *testing.T) {
	// 丈 alone maps to Length, but フード丈 must win over it.
	res, err := TranslateCell("フード丈：26.5cm", dictionary.Base())

	require.NoError(t, err)
	assert.Equal(t, "Hood Length：26.5cm", res.Rendered)
}

func TestTranslateCell_NumbersAndUnitsPreserved(t *testing.T) {
	res, err := TranslateCell("総丈：66.2cm～68.0cm", dictionary.Base())

	require.NoError(t, err)
	assert.Contains(t, res.Rendered, "66.2cm")
	assert.Contains(t, res.Rendered, "68.0cm")
}

func TestTranslateCell_NonJapaneseUntouched(t *testing.T) {
	for _, text := range []string{"", "Total Length: 66.2cm", "100% cotton", "a) 42cm"} {
		res, err := TranslateCell(text, dictionary.Base())

		require.NoError(t, err)
		assert.Equal(t, text, res.Rendered)
		assert.Empty(t, res.Unmatched)
	}
}

func TestTranslateCell_Idempotent(t *testing.T) {
	first, err := TranslateCell("総丈：66.2cm\n綿100%", dictionary.Base())
	require.NoError(t, err)

	second, err := TranslateCell(first.Rendered, dictionary.Base())
	require.NoError(t, err)
	assert.Equal(t, first.Rendered, second.Rendered)
}

func TestTranslateCell_UnknownTermSurvivesUnchanged(t *testing.T) {
	dict := dictionary.Dictionary{"総丈": "Total Length"}

	res, err := TranslateCell("東丈：10cm", dict)

	require.NoError(t, err)
	assert.Equal(t, "東丈：10cm", res.Rendered)
	assert.Equal(t, []string{"東丈"}, res.Unmatched)
}

func TestTranslateCell_LearningTakesEffectNextPass(t *testing.T) {
	store := dictionary.NewStore(nil, nil)
	text := "ヨーク下丈：45cm"

	// Before learning, only the generic 丈 suffix matches.
	before, err := TranslateCell(text, store.Snapshot().General)
	require.NoError(t, err)
	assert.Equal(t, "ヨーク下Length：45cm", before.Rendered)
	assert.Contains(t, before.Unmatched, "ヨーク下")

	require.NoError(t, store.Learn("ヨーク下丈", "Length Below Yoke"))

	after, err := TranslateCell(text, store.Snapshot().General)
	require.NoError(t, err)
	assert.Equal(t, "Length Below Yoke：45cm", after.Rendered)
	assert.Empty(t, after.Unmatched)
}

func TestTranslateCell_LineCountPreserved(t *testing.T) {
	text := "総丈：66.2cm\n\n肩幅：42cm\n"

	res, err := TranslateCell(text, dictionary.Base())

	require.NoError(t, err)
	assert.Equal(t, strings.Count(text, "\n"), strings.Count(res.Rendered, "\n"))
}

func TestTranslateCell_SingleRuneSpansNotSurfaced(t *testing.T) {
	// Lone-kanji spans stay untranslated in the output but are never offered
	// for learning.
	res, err := TranslateCell("絹：10cm", dictionary.Base())

	require.NoError(t, err)
	assert.Equal(t, "絹：10cm", res.Rendered)
	assert.Empty(t, res.Unmatched)
}

func TestTranslateCell_UnmatchedDeduped(t *testing.T) {
	res, err := TranslateCell("東丈：10cm\n東丈：12cm", dictionary.Dictionary{"総丈": "Total Length"})

	require.NoError(t, err)
	assert.Equal(t, []string{"東丈"}, res.Unmatched)
}

func TestTranslateMaterialsCell_Segments(t *testing.T) {
	block := "綿100%\n※洗濯機で洗えます\n※漂白剤は使用しないでください\n中国"

	res, err := TranslateMaterialsCell(block, baseSnapshot())

	require.NoError(t, err)
	assert.Equal(t, "綿100%\n", res.Materials)
	assert.Equal(t, "Cotton100%\n", res.MaterialsEN)
	assert.Equal(t, "※Machine Washable\n※Do Not Use Bleach\n", res.CareEN)
	assert.Equal(t, "中国", res.Country)
	assert.Empty(t, res.Unmatched)
}

func TestTranslateMaterialsCell_CountryNotTranslated(t *testing.T) {
	res, err := TranslateMaterialsCell("綿100%\n※洗濯機で洗えます\n中国", baseSnapshot())

	require.NoError(t, err)
	assert.Equal(t, "中国", res.Country)
}

func TestTranslateMaterialsCell_CareUnknownsNotCollected(t *testing.T) {
	// Care labels outside the care dictionary are left as-is but never
	// reported for learning.
	res, err := TranslateMaterialsCell("綿100%\n※ネット使用", baseSnapshot())

	require.NoError(t, err)
	assert.Empty(t, res.Unmatched)
	assert.Contains(t, res.CareEN, "ネット使用")
}

func TestTranslateMaterialsCell_MaterialsOnly(t *testing.T) {
	res, err := TranslateMaterialsCell("ポリエステル80% 綿20%", baseSnapshot())

	require.NoError(t, err)
	assert.Equal(t, "Polyester80% Cotton20%", res.MaterialsEN)
	assert.Empty(t, res.Care)
	assert.Empty(t, res.Country)
}

func TestTranslateRow_SevenColumns(t *testing.T) {
	row := []string{
		"総丈：66.2cm\nフード丈：26.5cm",
		"綿100%\n※洗濯機で洗えます\n中国",
	}

	out, unknown, err := TranslateRow(row, baseSnapshot(), DefaultLayout(), FormatOptions{})

	require.NoError(t, err)
	require.Len(t, out, 7)
	assert.Equal(t, row[0], out[0])
	assert.Equal(t, "Total Length：66.2cm\nHood Length：26.5cm", out[1])
	assert.Equal(t, "綿100%", out[2])
	assert.Equal(t, "Cotton100%", out[3])
	assert.Equal(t, "※洗濯機で洗えます", out[4])
	assert.Equal(t, "※Machine Washable", out[5])
	assert.Equal(t, "中国", out[6])
	assert.Empty(t, unknown)
}

func TestTranslateRow_TwoColumnsWithoutMaterials(t *testing.T) {
	layout := RowLayout{DimensionsCol: 0, MaterialsCol: -1}

	out, _, err := TranslateRow([]string{"総丈：66.2cm"}, baseSnapshot(), layout, FormatOptions{})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "総丈：66.2cm", out[0])
	assert.Equal(t, "Total Length：66.2cm", out[1])
}

func TestTranslateRow_ShortRowPassedThrough(t *testing.T) {
	layout := RowLayout{DimensionsCol: 2, MaterialsCol: 3}

	out, unknown, err := TranslateRow([]string{"only one"}, baseSnapshot(), layout, FormatOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"only one"}, out)
	assert.Empty(t, unknown)
}

func TestTranslateRow_CollectsUnknownsFromBothColumns(t *testing.T) {
	snap := dictionary.Snapshot{
		General: dictionary.Dictionary{"総丈": "Total Length"},
		Care:    dictionary.Dictionary{},
	}
	row := []string{"東丈：10cm", "謎素材100%"}

	_, unknown, err := TranslateRow(row, snap, DefaultLayout(), FormatOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"東丈", "謎素材"}, unknown)
}
