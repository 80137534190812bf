package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/MimeLyc/garment-csv-translator/internal/config"
	"github.com/MimeLyc/garment-csv-translator/pkg/file"
	"github.com/MimeLyc/garment-csv-translator/pkg/icron"
	"github.com/MimeLyc/garment-csv-translator/pkg/log"
)

// translatedSuffix marks output files so watch runs never re-translate their
// own output.
const translatedSuffix = "_translated"

type watchService struct {
	translator      *Translator
	cfg             config.Config
	cron            *cron.Cron
	lastTriggerTime time.Time
}

// NewRunnableWatchService creates the scheduled watch service. It scans the
// configured directory on the cron schedule and translates every CSV file
// modified since the previous trigger, with learning disabled.
func NewRunnableWatchService(
	translator *Translator,
	cfg config.Config,
	cron *cron.Cron,
) *watchService {
	return &watchService{
		translator: translator,
		cfg:        cfg,
		cron:       cron,
	}
}

var singleflightGroup singleflight.Group

// Schedule registers the watch job and reports the next trigger time.
func (s *watchService) Schedule(ctx context.Context) error {
	log.Info("Run WatchService on dir %s", s.cfg.Watch.Dir)

	if info, err := icron.GetTriggerInfo(s.cfg.Watch.CronExpr, time.Now()); err == nil {
		log.Info("Watch schedule %q, next trigger in %v", s.cfg.Watch.CronExpr, info.TimeUntilNext)
	}

	s.lastTriggerTime = time.Now()
	runFunc := func() {
		_, _, _ = singleflightGroup.Do("watch", func() (any, error) {
			since := s.lastTriggerTime
			s.lastTriggerTime = time.Now()
			if err := s.run(ctx, since); err != nil {
				log.Error("Watch run failed: %v", err)
			}
			return nil, nil
		})
	}
	_, err := s.cron.AddFunc(s.cfg.Watch.CronExpr, runFunc)
	return err
}

func (s *watchService) run(ctx context.Context, since time.Time) error {
	targets, err := s.findTargetFiles(since)
	if err != nil {
		return err
	}
	log.Info("Found %d CSV files to translate in %s", len(targets), s.cfg.Watch.Dir)

	for _, path := range targets {
		report, err := s.translator.Run(ctx, path, "")
		if err != nil {
			log.Error("Failed to translate %s: %v", path, err)
			continue
		}
		log.Info("Translated %s -> %s (%d rows, %d unknown terms)",
			path, report.OutputPath, report.Rows, len(report.UnknownTerms))
	}
	return nil
}

// findTargetFiles lists CSV files modified since the previous trigger,
// excluding files this tool produced.
func (s *watchService) findTargetFiles(since time.Time) ([]string, error) {
	recent, err := file.FindRecentAfter(s.cfg.Watch.Dir, since)
	if err != nil {
		return nil, err
	}

	var targets []string
	for _, path := range file.FilterByExt(recent, ".csv") {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if strings.HasSuffix(base, translatedSuffix) {
			continue
		}
		targets = append(targets, path)
	}
	return targets, nil
}
