package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/MimeLyc/garment-csv-translator/internal/cli"
	"github.com/MimeLyc/garment-csv-translator/internal/config"
	"github.com/MimeLyc/garment-csv-translator/internal/dictionary"
	"github.com/MimeLyc/garment-csv-translator/internal/persistence"
	"github.com/MimeLyc/garment-csv-translator/internal/service"
	"github.com/MimeLyc/garment-csv-translator/pkg/log"
)

func main() {
	_ = godotenv.Load()

	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cmd.SilenceUsage = true
	ctx := context.Background()

	cfg, err := buildConfig(cmd, flags)
	if err != nil {
		return err
	}
	if err := setupLogger(cfg); err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	// Handle --list flag
	if flags.List {
		printDictionary(store.Effective())
		return nil
	}

	var history *persistence.Store
	if cfg.History.DBPath != "" {
		history, err = persistence.NewStore(cfg.History.DBPath)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer history.Close()
	}

	// Handle --history flag
	if flags.ShowHistory > 0 {
		return printHistory(ctx, history, flags.ShowHistory)
	}

	translator := service.NewTranslator(store, *cfg, history)

	// Watch mode runs until interrupted
	if cfg.Watch.Dir != "" {
		return runWatch(ctx, translator, *cfg)
	}

	if len(args) == 0 {
		return cmd.Help()
	}
	return runTranslate(ctx, translator, *cfg, args[0], flags.Output)
}

// runTranslate performs the translate / learn / re-translate flow for a
// single file.
func runTranslate(ctx context.Context, translator *service.Translator, cfg config.Config, inputPath, outputPath string) error {
	report, err := translator.Run(ctx, inputPath, outputPath)
	if err != nil {
		return err
	}
	printReport(report)

	if !cfg.Run.Learn || len(report.UnknownTerms) == 0 {
		return nil
	}

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	learned, err := prompter.PromptTerms(report.UnknownTerms, func(term, translation string) error {
		return translator.Learn(ctx, term, translation)
	})
	if err != nil {
		return err
	}
	if learned == 0 {
		return nil
	}

	// Second pass with the enriched dictionary snapshot.
	fmt.Println("\nRe-translating with newly learned terms...")
	report, err = translator.Run(ctx, inputPath, outputPath)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func runWatch(ctx context.Context, translator *service.Translator, cfg config.Config) error {
	c := cron.New()
	watch := service.NewRunnableWatchService(translator, cfg, c)
	if err := watch.Schedule(ctx); err != nil {
		return err
	}
	c.Run() // blocks
	return nil
}

// setupLogger initializes the global logger, to a file when LOG_FILE is set.
func setupLogger(cfg *config.Config) error {
	level := log.ParseLevel(cfg.Log.Level)
	if cfg.Log.File == "" {
		log.InitLogger(level)
		return nil
	}
	fileLogger, err := log.NewFileLogger(cfg.Log.File, level)
	if err != nil {
		return fmt.Errorf("init file logger: %w", err)
	}
	log.SetGlobalLogger(fileLogger.Logger)
	return nil
}

// buildConfig starts from the plain environment defaults, then overlays the
// viper config file, prefixed environment and explicitly set flags.
func buildConfig(cmd *cobra.Command, flags *cli.Flags) (*config.Config, error) {
	return config.NewFromEnv(func(cfg *config.Config) {
		cli.ApplyViper(cmd, cfg)
		if flags.NoLearn {
			cfg.Run.Learn = false
		}
	})
}

func loadStore(cfg *config.Config) (*dictionary.Store, error) {
	learned, err := dictionary.Load(cfg.Dict.TranslationsFile)
	if err != nil {
		return nil, fmt.Errorf("load learned translations: %w", err)
	}
	if len(learned) > 0 {
		log.Info("Loaded %d previously learned translations", len(learned))
	}

	care, err := dictionary.Load(cfg.Dict.CareLabelsFile)
	if err != nil {
		return nil, fmt.Errorf("load care labels: %w", err)
	}
	if len(care) > 0 {
		log.Info("Loaded %d care label translations", len(care))
	}

	return dictionary.NewStore(learned, care), nil
}

func printDictionary(dict dictionary.Dictionary) {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("Available translations:")
	for _, k := range keys {
		fmt.Printf("  %s -> %s\n", k, dict[k])
	}
}

func printHistory(ctx context.Context, history *persistence.Store, limit int) error {
	if history == nil {
		return fmt.Errorf("--history requires --history-db")
	}
	runs, err := history.RecentRuns(ctx, limit)
	if err != nil {
		return err
	}
	for _, run := range runs {
		fmt.Printf("%s  %s -> %s  rows=%d unknown=%d learned=%d (%v)\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.InputFile, run.OutputFile,
			run.Rows, run.UnknownTerms, run.LearnedTerms, run.Duration)
	}
	return nil
}

func printReport(report *service.RunReport) {
	fmt.Printf("Translation complete! Output saved to: %s\n", report.OutputPath)
	fmt.Printf("  Rows: %d, source language: %s, took %v\n",
		report.Rows, report.SourceLang, report.Duration)
	if len(report.UnknownTerms) > 0 {
		fmt.Printf("  Unknown terms: %d\n", len(report.UnknownTerms))
	}
}
