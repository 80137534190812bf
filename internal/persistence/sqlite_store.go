package persistence

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Store keeps the run history in a local sqlite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (and if needed creates) the history database at path.
func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		return fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	// Bootstrap schema_migrations table so we can track applied versions.
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		version := migrationVersion(entry.Name())
		if version <= 0 {
			continue
		}
		var exists int
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, version).Scan(&exists); err != nil {
			return fmt.Errorf("check migration %s: %w", entry.Name(), err)
		}
		if exists > 0 {
			continue
		}
		content, err := migrationFiles.ReadFile(filepath.Join("migrations", entry.Name()))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// migrationVersion extracts the leading integer from a migration filename (e.g. "001_init.sql" → 1).
func migrationVersion(name string) int {
	for i, c := range name {
		if c < '0' || c > '9' {
			if i == 0 {
				return 0
			}
			n, _ := strconv.Atoi(name[:i])
			return n
		}
	}
	n, _ := strconv.Atoi(name)
	return n
}

// RecordRun inserts one run into the history.
func (s *Store) RecordRun(ctx context.Context, run RunRecord) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
			input_file, output_file, rows, cells, unknown_terms, learned_terms, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.InputFile,
		run.OutputFile,
		run.Rows,
		run.Cells,
		run.UnknownTerms,
		run.LearnedTerms,
		run.Duration.Milliseconds(),
	)
	return err
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, input_file, output_file, rows, cells, unknown_terms, learned_terms, duration_ms, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ret := make([]RunRecord, 0, limit)
	for rows.Next() {
		var item RunRecord
		var durationMs int64
		if err := rows.Scan(
			&item.ID,
			&item.InputFile,
			&item.OutputFile,
			&item.Rows,
			&item.Cells,
			&item.UnknownTerms,
			&item.LearnedTerms,
			&durationMs,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Duration = time.Duration(durationMs) * time.Millisecond
		ret = append(ret, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// RecordLearnedTerm upserts a learned term. Re-learning a term keeps one row
// and refreshes its translation and timestamp.
func (s *Store) RecordLearnedTerm(ctx context.Context, term, translation string) error {
	if term == "" {
		return fmt.Errorf("term is empty")
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO learned_terms (term, translation) VALUES (?, ?)
		ON CONFLICT(term) DO UPDATE SET
			translation=excluded.translation,
			learned_at=CURRENT_TIMESTAMP`,
		term,
		translation,
	)
	return err
}

// LearnedTerms returns all learned terms, oldest first.
func (s *Store) LearnedTerms(ctx context.Context) ([]LearnedRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT term, translation, learned_at FROM learned_terms ORDER BY learned_at ASC, term ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ret := make([]LearnedRecord, 0)
	for rows.Next() {
		var item LearnedRecord
		if err := rows.Scan(&item.Term, &item.Translation, &item.LearnedAt); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}
