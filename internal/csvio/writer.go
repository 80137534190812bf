package csvio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// WriteFile writes rows to path with every field quoted and "\n" line
// endings, matching the sheet format downstream tooling expects.
// encoding/csv only quotes when needed, so quoting is done here.
func WriteFile(path string, rows [][]string, delimiter rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				w.WriteRune(delimiter)
			}
			w.WriteByte('"')
			w.WriteString(strings.ReplaceAll(field, `"`, `""`))
			w.WriteByte('"')
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// OutputPath derives the default output path from an input path, inserting
// "_translated" before the extension.
func OutputPath(inputPath string) string {
	if i := strings.LastIndexByte(inputPath, '.'); i > 0 {
		return inputPath[:i] + "_translated" + inputPath[i:]
	}
	return inputPath + "_translated.csv"
}
