package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MimeLyc/garment-csv-translator/internal/dictionary"
)

// LearnFunc registers one user-supplied translation.
type LearnFunc func(term, translation string) error

// Prompter runs the interactive learning loop over unknown terms. The core
// only emits unknown-term data; all terminal I/O lives here.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// PromptTerms asks for a translation per term, in the order given. Empty
// input, "skip" and "s" skip a term. Returns how many terms were learned.
func (p *Prompter) PromptTerms(terms []string, learn LearnFunc) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	fmt.Fprintf(p.out, "\nFound %d unknown Japanese terms:\n", len(terms))
	for _, term := range terms {
		fmt.Fprintf(p.out, "  - %s\n", term)
	}
	fmt.Fprintf(p.out, "\nLearning new translations (press Enter to skip a term):\n")

	learned := 0
	for _, term := range terms {
		for {
			translation, err := p.ask(term)
			if err != nil {
				return learned, err
			}
			if translation == "" {
				fmt.Fprintf(p.out, "  Skipped %q\n", term)
				break
			}
			if err := learn(term, translation); err != nil {
				if errors.Is(err, dictionary.ErrInvalidTerm) {
					fmt.Fprintf(p.out, "  Cannot learn %q: %v\n", term, err)
					continue
				}
				return learned, err
			}
			learned++
			break
		}
	}
	return learned, nil
}

func (p *Prompter) ask(term string) (string, error) {
	fmt.Fprintf(p.out, "%q -> ", term)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", nil // EOF skips the rest
	}
	answer := strings.TrimSpace(p.in.Text())
	switch strings.ToLower(answer) {
	case "skip", "s":
		return "", nil
	}
	return answer, nil
}
