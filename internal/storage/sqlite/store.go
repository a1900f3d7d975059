// Package sqlite provides the SQLite-backed contact submission log.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"cjdelfin.dev/internal/contact"
	"cjdelfin.dev/internal/storage/sqlite/migrations"
)

const migrationTable = "schema_migrations"

// Submission is one recorded contact form submission
type Submission struct {
	ID        int64           `json:"id"`
	Message   contact.Message `json:"message"`
	Status    contact.Status  `json:"status"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store persists contact submissions in SQLite
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateSubmission inserts a pending submission and returns its ID.
func (s *Store) CreateSubmission(ctx context.Context, msg contact.Message) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	now := toMillis(s.now())
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO contact_submissions (name, email, subject, message, status, error, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, '', ?, ?)`,
		msg.Name, msg.Email, msg.Subject, msg.Message, string(contact.StatusPending), now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert contact submission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read contact submission id: %w", err)
	}
	return id, nil
}

// MarkSubmission records the delivery outcome of a submission.
func (s *Store) MarkSubmission(ctx context.Context, id int64, status contact.Status, errText string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE contact_submissions SET status = ?, error = ?, updated_at = ? WHERE id = ?`,
		string(status), errText, toMillis(s.now()), id,
	)
	if err != nil {
		return fmt.Errorf("update contact submission %d: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact submission %d: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("contact submission %d not found", id)
	}
	return nil
}

// ListSubmissions returns the most recent submissions, newest first.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, email, subject, message, status, error, created_at, updated_at
		 FROM contact_submissions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var submissions []Submission
	for rows.Next() {
		var (
			sub       Submission
			status    string
			createdAt int64
			updatedAt int64
		)
		if err := rows.Scan(&sub.ID, &sub.Message.Name, &sub.Message.Email, &sub.Message.Subject,
			&sub.Message.Message, &status, &sub.Error, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		sub.Status = contact.Status(status)
		sub.CreatedAt = fromMillis(createdAt)
		sub.UpdatedAt = fromMillis(updatedAt)
		submissions = append(submissions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact submissions: %w", err)
	}
	return submissions, nil
}

// applyMigrations executes each embedded .sql file at most once.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := sqlDB.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`, migrationTable)); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		var applied int
		if err := sqlDB.QueryRow(
			fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE name = ?", migrationTable), file,
		).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		tx, err := sqlDB.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", file, err)
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(
			fmt.Sprintf("INSERT INTO %s (name, applied_at) VALUES (?, ?)", migrationTable),
			file, toMillis(time.Now()),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

// upSection returns the SQL between "-- +migrate Up" and "-- +migrate Down".
func upSection(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	start := strings.Index(content, up)
	if start == -1 {
		return content
	}
	content = content[start+len(up):]
	if end := strings.Index(content, down); end != -1 {
		content = content[:end]
	}
	return content
}
