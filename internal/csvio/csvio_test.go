package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MultilineQuotedCells(t *testing.T) {
	content := "\"総丈：66.2cm\nフード丈：26.5cm\",\"綿100%\n中国\"\n"

	rows, err := Parse(content)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 2)
	assert.Equal(t, "総丈：66.2cm\nフード丈：26.5cm", rows[0][0])
	assert.Equal(t, "綿100%\n中国", rows[0][1])
}

func TestParse_UnevenRowWidths(t *testing.T) {
	rows, err := Parse("a,b,c\nd\ne,f\n")

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 1)
	assert.Len(t, rows[2], 2)
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    rune
	}{
		{"comma", "a,b,c\nd,e,f\n", ','},
		{"semicolon", "a;b;c\nd;e;f\n", ';'},
		{"tab", "a\tb\tc\nd\te\tf\n", '\t'},
		{"empty defaults to comma", "", ','},
		{"quoted separators ignored", "\"a;b;c;d\",x\n\"e;f;g;h\",y\n", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDelimiter(tt.content))
		})
	}
}

func TestWriteFile_QuotesAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]string{
		{"総丈：66.2cm", "Total Length：66.2cm"},
		{"line1\nline2", "say \"hi\""},
	}

	require.NoError(t, WriteFile(path, rows, ','))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Equal(t, "\"総丈：66.2cm\",\"Total Length：66.2cm\"\n\"line1\nline2\",\"say \"\"hi\"\"\"\n", content)
	assert.False(t, strings.Contains(content, "\r\n"))
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]string{
		{"a）総丈：66.2cm\nフード丈：26.5cm", "綿100%\n※手洗い\n中国"},
		{"", "plain"},
	}

	require.NoError(t, WriteFile(path, rows, ','))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "data_translated.csv", OutputPath("data.csv"))
	assert.Equal(t, "dir/run.1_translated.csv", OutputPath("dir/run.1.csv"))
	assert.Equal(t, "noext_translated.csv", OutputPath("noext"))
}
