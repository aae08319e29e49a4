package output

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/felo/inbox-triage/internal/pipeline"
	"github.com/felo/inbox-triage/internal/triage"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    identifier TEXT UNIQUE NOT NULL,
    subject TEXT,
    sender TEXT,
    priority TEXT NOT NULL,
    summary TEXT,
    draft_reply TEXT,
    category TEXT NOT NULL,
    processed_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_results_priority ON results(priority);
CREATE INDEX IF NOT EXISTS idx_results_category ON results(category);
`

// Store is a SQLite-backed results sink, used when the output format is
// sqlite instead of JSON. One database file holds the results of one run.
type Store struct {
	*sql.DB
}

// OpenStore opens a SQLite database at path and initializes the schema.
func OpenStore(path string) (*Store, error) {
	// Ensure the directory exists
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single connection
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	store := &Store{sqlDB}

	if _, err := store.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// WriteResults inserts all results in one transaction, in order. Existing
// rows with the same identifier are replaced so re-running against the same
// output file stays idempotent.
func (s *Store) WriteResults(results []pipeline.Result) error {
	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO results (identifier, subject, sender, priority, summary, draft_reply, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(identifier) DO UPDATE SET
			subject = excluded.subject,
			sender = excluded.sender,
			priority = excluded.priority,
			summary = excluded.summary,
			draft_reply = excluded.draft_reply,
			category = excluded.category,
			processed_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, res := range results {
		_, err := stmt.Exec(res.Identifier, res.Subject, res.Sender,
			string(res.Priority), res.Summary, res.DraftReply, string(res.Category))
		if err != nil {
			return fmt.Errorf("failed to insert result for %s: %w", res.Identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}

	return nil
}

// CountResults returns the number of stored results.
func (s *Store) CountResults() (int, error) {
	var count int
	if err := s.QueryRow("SELECT COUNT(*) FROM results").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return count, nil
}

// ResultByIdentifier fetches one stored result by its identifier.
func (s *Store) ResultByIdentifier(identifier string) (*pipeline.Result, error) {
	var res pipeline.Result
	var priority, category string

	err := s.QueryRow(`
		SELECT identifier, subject, sender, priority, summary, draft_reply, category
		FROM results WHERE identifier = ?
	`, identifier).Scan(&res.Identifier, &res.Subject, &res.Sender,
		&priority, &res.Summary, &res.DraftReply, &category)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no result for identifier %q", identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query result: %w", err)
	}

	res.Priority = triage.Priority(priority)
	res.Category = triage.Category(category)
	return &res, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.DB.Close()
}
