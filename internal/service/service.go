package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MimeLyc/garment-csv-translator/internal/config"
	"github.com/MimeLyc/garment-csv-translator/internal/csvio"
	"github.com/MimeLyc/garment-csv-translator/internal/dictionary"
	"github.com/MimeLyc/garment-csv-translator/internal/persistence"
	"github.com/MimeLyc/garment-csv-translator/pkg/log"
)

// Translator runs translation passes over CSV files. The dictionary snapshot
// is taken once per pass, so a pass never observes learning that happens
// while it runs.
type Translator struct {
	store   *dictionary.Store
	cfg     config.Config
	history *persistence.Store // optional, nil disables run history
}

// NewTranslator creates a translator over a dictionary store.
func NewTranslator(store *dictionary.Store, cfg config.Config, history *persistence.Store) *Translator {
	return &Translator{
		store:   store,
		cfg:     cfg,
		history: history,
	}
}

// Layout derives the row layout from configuration. The materials column is
// configured 1-based; zero disables materials handling.
func (t *Translator) Layout() RowLayout {
	layout := DefaultLayout()
	if t.cfg.Run.MaterialsColumn == 0 {
		layout.MaterialsCol = -1
	} else {
		layout.MaterialsCol = t.cfg.Run.MaterialsColumn - 1
	}
	return layout
}

func (t *Translator) formatOptions() FormatOptions {
	if !t.cfg.Run.ASCIIPunct {
		return FormatOptions{}
	}
	return FormatOptions{
		ASCIIPunctuation: true,
		SpaceAfterPunct:  true,
		SpaceBeforeUnits: true,
	}
}

// Run translates inputPath into outputPath using the current dictionary
// snapshot and returns a report including the unknown terms surfaced.
func (t *Translator) Run(ctx context.Context, inputPath, outputPath string) (*RunReport, error) {
	started := time.Now()
	if outputPath == "" {
		outputPath = csvio.OutputPath(inputPath)
	}

	rows, err := csvio.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	snap := t.store.Snapshot()
	outRows, unknown, err := t.translatePass(ctx, rows, snap)
	if err != nil {
		return nil, err
	}

	if err := csvio.WriteFile(outputPath, outRows, ','); err != nil {
		return nil, err
	}

	report := &RunReport{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Rows:         len(rows),
		Cells:        countCells(rows),
		UnknownTerms: unknown,
		LearnedTerms: t.store.LearnedCount(),
		SourceLang:   DetectSourceLanguage(rows),
		Duration:     time.Since(started),
	}

	t.recordRun(ctx, report)
	return report, nil
}

// translatePass translates all rows against one snapshot. Rows are processed
// in parallel; results and unknown terms are merged back in row order so the
// learning prompt order stays deterministic.
func (t *Translator) translatePass(
	ctx context.Context,
	rows [][]string,
	snap dictionary.Snapshot,
) ([][]string, []string, error) {
	layout := t.Layout()
	opts := t.formatOptions()

	outRows := make([][]string, len(rows))
	rowUnknown := make([][]string, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.cfg.Run.Workers)

	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if len(row) == 0 {
				outRows[i] = []string{""}
				return nil
			}
			out, unknown, err := TranslateRow(row, snap, layout, opts)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			outRows[i] = out
			rowUnknown[i] = unknown
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var unknown []string
	for _, terms := range rowUnknown {
		unknown = append(unknown, terms...)
	}
	return outRows, dedupe(unknown), nil
}

// Learn registers a user-supplied translation in the learned overlay and
// persists the overlay. The next Run picks it up through a fresh snapshot.
func (t *Translator) Learn(ctx context.Context, term, translation string) error {
	if err := t.store.Learn(term, translation); err != nil {
		return err
	}
	if err := dictionary.Save(t.cfg.Dict.TranslationsFile, t.store.Learned()); err != nil {
		return fmt.Errorf("save learned translations: %w", err)
	}
	if t.history != nil {
		if err := t.history.RecordLearnedTerm(ctx, term, translation); err != nil {
			log.Warn("Failed to record learned term %q: %v", term, err)
		}
	}
	log.Info("Learned: %q -> %q", term, translation)
	return nil
}

func (t *Translator) recordRun(ctx context.Context, report *RunReport) {
	if t.history == nil {
		return
	}
	err := t.history.RecordRun(ctx, persistence.RunRecord{
		InputFile:    report.InputPath,
		OutputFile:   report.OutputPath,
		Rows:         report.Rows,
		Cells:        report.Cells,
		UnknownTerms: len(report.UnknownTerms),
		LearnedTerms: report.LearnedTerms,
		Duration:     report.Duration,
	})
	if err != nil {
		log.Warn("Failed to record run for %s: %v", report.InputPath, err)
	}
}

func countCells(rows [][]string) int {
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	return total
}
