package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullBlock = "綿100%\nポリエステル80% 綿20%\n※洗濯機で洗えます\n※漂白剤は使用しないでください\n中国"

func TestSplit_ThreeSegments(t *testing.T) {
	segments := Split(fullBlock)

	require.Len(t, segments, 3)
	assert.Equal(t, Materials, segments[0].Kind)
	assert.Equal(t, "綿100%\nポリエステル80% 綿20%\n", segments[0].Text)
	assert.Equal(t, CareInstructions, segments[1].Kind)
	assert.Equal(t, "※洗濯機で洗えます\n※漂白剤は使用しないでください\n", segments[1].Text)
	assert.Equal(t, CountryOfOrigin, segments[2].Kind)
	assert.Equal(t, "中国", segments[2].Text)
}

func TestSplit_PartitionLaw(t *testing.T) {
	blocks := []string{
		fullBlock,
		"綿100%",
		"綿100%\n※手洗いのみ",
		"※タンブラー乾燥禁止\n日本",
		"綿100%\n\n※陰干し\n\nベトナム\n",
		"",
		"\n\n\n",
		"肩幅：42cm\n身幅：50cm",
	}

	for _, block := range blocks {
		segments := Split(block)
		var joined strings.Builder
		for _, seg := range segments {
			joined.WriteString(seg.Text)
		}
		assert.Equal(t, block, joined.String(), "segments must partition the block")
	}
}

func TestSplit_NoMarkersSingleMaterialsSegment(t *testing.T) {
	block := "綿80%\nポリエステル20%"
	segments := Split(block)

	require.Len(t, segments, 1)
	assert.Equal(t, Materials, segments[0].Kind)
	assert.Equal(t, block, segments[0].Text)
}

func TestSplit_NoCountryLine(t *testing.T) {
	segments := Split("綿100%\n※手洗いのみ")

	require.Len(t, segments, 2)
	assert.Equal(t, Materials, segments[0].Kind)
	assert.Equal(t, CareInstructions, segments[1].Kind)
}

func TestSplit_CareWithoutMaterials(t *testing.T) {
	segments := Split("※手洗いのみ\n中国")

	require.Len(t, segments, 2)
	assert.Equal(t, CareInstructions, segments[0].Kind)
	assert.Equal(t, CountryOfOrigin, segments[1].Kind)
}

func TestSplit_NonCountryTrailingLineStaysInCare(t *testing.T) {
	// The last line is not a known country, so no country segment.
	segments := Split("綿100%\n※手洗いのみ\n丁寧に扱ってください")

	require.Len(t, segments, 2)
	assert.Equal(t, CareInstructions, segments[1].Kind)
	assert.Contains(t, segments[1].Text, "丁寧に扱ってください")
}

func TestSplit_CareMarkerAfterCountryCandidateCancelsIt(t *testing.T) {
	// A care line after the country candidate means the candidate is not
	// trailing, so everything stays in the care segment.
	segments := Split("※手洗い\n中国\n※漂白不可")

	require.Len(t, segments, 1)
	assert.Equal(t, CareInstructions, segments[0].Kind)
}

func TestSplit_EmptyBlock(t *testing.T) {
	assert.Nil(t, Split(""))
}

func TestSplit_TrailingNewlineAfterCountry(t *testing.T) {
	segments := Split("※手洗い\n中国\n")

	require.Len(t, segments, 2)
	assert.Equal(t, CountryOfOrigin, segments[1].Kind)
	assert.Equal(t, "中国\n", segments[1].Text)
}

func TestIsCountryLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"中国", true},
		{"日本", true},
		{"ベトナム", true},
		{"原産国：中国", true},
		{"生産国 日本", true},
		{"日本製", true},
		{"原産国：日本製", true},
		{"中国綿", false},
		{"丁寧に扱ってください", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCountryLine(tt.line))
		})
	}
}

func TestSegmentKindString(t *testing.T) {
	assert.Equal(t, "materials", Materials.String())
	assert.Equal(t, "care_instructions", CareInstructions.String())
	assert.Equal(t, "country_of_origin", CountryOfOrigin.String())
}
