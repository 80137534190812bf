package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MimeLyc/garment-csv-translator/internal/config"
)

// Version is the release version stamped at build time.
var Version = "dev"

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "garment-translator [input.csv]",
		Short: "Japanese garment CSV translator",
		Long: `garment-translator translates Japanese garment measurement and care-label
terms in CSV cells to English, preserving every number, unit and line break.

Unknown terms are collected and can be taught interactively; learned
translations persist to a JSON dictionary and apply on the next pass.

Examples:
  garment-translator products.csv                  # Translate, learn new terms interactively
  garment-translator products.csv -o out.csv       # Explicit output path
  garment-translator products.csv --no-learn       # Existing dictionary only
  garment-translator --list                        # Print the effective dictionary
  garment-translator --watch-dir ./inbox           # Translate new CSVs on a schedule`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.garment-translator.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output CSV path (default: <input>_translated.csv)")
	cmd.Flags().BoolVar(&flags.NoLearn, "no-learn", false, "Skip interactive learning of unknown terms")
	cmd.Flags().IntVar(&flags.MaterialsCol, "materials-col", flags.MaterialsCol, "1-based column holding materials text (0 disables)")
	cmd.Flags().BoolVar(&flags.List, "list", false, "Print the effective dictionary and exit")
	cmd.Flags().BoolVar(&flags.ASCIIPunct, "ascii-punct", false, "Fold full-width punctuation to ASCII in translated output")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Parallel row translation workers")

	cmd.Flags().StringVar(&flags.DictFile, "dict", flags.DictFile, "Learned translations JSON file")
	cmd.Flags().StringVar(&flags.CareLabelsFile, "care-labels", flags.CareLabelsFile, "Care label dictionary JSON file")

	cmd.Flags().StringVar(&flags.WatchDir, "watch-dir", "", "Watch a directory and translate new CSV files on a schedule")
	cmd.Flags().StringVar(&flags.CronExpr, "cron", flags.CronExpr, "Cron schedule for watch mode")

	cmd.Flags().StringVar(&flags.HistoryDB, "history-db", "", "SQLite run-history database path (empty disables)")
	cmd.Flags().IntVar(&flags.ShowHistory, "history", 0, "Show the N most recent runs and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("dict.translations_file", cmd.Flags().Lookup("dict"))
	viper.BindPFlag("dict.care_labels_file", cmd.Flags().Lookup("care-labels"))
	viper.BindPFlag("run.materials_column", cmd.Flags().Lookup("materials-col"))
	viper.BindPFlag("run.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("run.ascii_punct", cmd.Flags().Lookup("ascii-punct"))
	viper.BindPFlag("watch.dir", cmd.Flags().Lookup("watch-dir"))
	viper.BindPFlag("watch.cron_expr", cmd.Flags().Lookup("cron"))
	viper.BindPFlag("history.db_path", cmd.Flags().Lookup("history-db"))
}

// ApplyViper overlays config-file and GARMENTTRANS_* environment values onto
// cfg. Through the pflag bindings an explicitly set flag takes precedence
// over both; an untouched flag leaves cfg alone unless viper carries a value,
// so the plain environment variables config.NewFromEnv reads keep working.
func ApplyViper(cmd *cobra.Command, cfg *config.Config) {
	setString := func(flagName, key string, dst *string) {
		if cmd.Flags().Changed(flagName) || viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	setInt := func(flagName, key string, dst *int) {
		if cmd.Flags().Changed(flagName) || viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}

	setString("dict", "dict.translations_file", &cfg.Dict.TranslationsFile)
	setString("care-labels", "dict.care_labels_file", &cfg.Dict.CareLabelsFile)
	setInt("materials-col", "run.materials_column", &cfg.Run.MaterialsColumn)
	setInt("workers", "run.workers", &cfg.Run.Workers)
	if cmd.Flags().Changed("ascii-punct") || viper.IsSet("run.ascii_punct") {
		cfg.Run.ASCIIPunct = viper.GetBool("run.ascii_punct")
	}
	setString("watch-dir", "watch.dir", &cfg.Watch.Dir)
	setString("cron", "watch.cron_expr", &cfg.Watch.CronExpr)
	setString("history-db", "history.db_path", &cfg.History.DBPath)
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".garment-translator" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".garment-translator")
	}

	// Environment variables: GARMENTTRANS_RUN_WORKERS maps to run.workers
	viper.SetEnvPrefix("GARMENTTRANS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
