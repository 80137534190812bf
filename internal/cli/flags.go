package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	Output       string
	NoLearn      bool
	MaterialsCol int
	List         bool
	ASCIIPunct   bool
	Workers      int

	// Dictionary flags
	DictFile       string
	CareLabelsFile string

	// Watch flags
	WatchDir string
	CronExpr string

	// History flags
	HistoryDB   string
	ShowHistory int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		MaterialsCol:   2,
		Workers:        4,
		DictFile:       "learned_translations.json",
		CareLabelsFile: "care_labels.json",
		CronExpr:       "*/5 * * * *",
	}
}
