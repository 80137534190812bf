package persistence

import "time"

// RunRecord is one translation run as stored in the history database.
type RunRecord struct {
	ID           int64
	InputFile    string
	OutputFile   string
	Rows         int
	Cells        int
	UnknownTerms int
	LearnedTerms int
	Duration     time.Duration
	CreatedAt    time.Time
}

// LearnedRecord is one learned term as stored in the history database.
type LearnedRecord struct {
	Term        string
	Translation string
	LearnedAt   time.Time
}
