package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mortgage-pulse/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	session_id TEXT NOT NULL,
	lead_name TEXT NOT NULL,
	lead_phone TEXT NOT NULL,
	lead_email TEXT NOT NULL,
	scenario TEXT NOT NULL,
	monthly_savings REAL NOT NULL,
	duration_years INTEGER NOT NULL,
	can_save INTEGER NOT NULL,
	full_data_json TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	session_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	event_data_json TEXT NOT NULL
);
`

// SQLiteStore backs the submission and event repositories with a single
// sqlite database file (pure-Go driver, no cgo).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and applies the
// schema. Use ":memory:" for tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection: sqlite serializes writers anyway, and pooled
	// connections would each get their own ":memory:" database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Submissions returns the SubmissionRepository view of the store.
func (s *SQLiteStore) Submissions() SubmissionRepository {
	return &sqliteSubmissions{db: s.db}
}

// Events returns the EventRepository view of the store.
func (s *SQLiteStore) Events() EventRepository {
	return &sqliteEvents{db: s.db}
}

type sqliteSubmissions struct {
	db *sql.DB
}

func (r *sqliteSubmissions) Save(submission domain.Submission) error {
	_, err := r.db.Exec(
		`INSERT INTO submissions
			(id, created_at, session_id, lead_name, lead_phone, lead_email,
			 scenario, monthly_savings, duration_years, can_save, full_data_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		submission.ID,
		submission.CreatedAt.Format(time.RFC3339Nano),
		submission.SessionID,
		submission.LeadName,
		submission.LeadPhone,
		submission.LeadEmail,
		submission.Scenario,
		submission.MonthlySavings,
		submission.NewMortgageDurationYears,
		submission.CanSave,
		submission.FullDataJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

func (r *sqliteSubmissions) List() ([]domain.Submission, error) {
	rows, err := r.db.Query(
		`SELECT id, created_at, session_id, lead_name, lead_phone, lead_email,
			scenario, monthly_savings, duration_years, can_save, full_data_json
		 FROM submissions
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	submissions := []domain.Submission{}
	for rows.Next() {
		var sub domain.Submission
		var createdAt string
		if err := rows.Scan(
			&sub.ID, &createdAt, &sub.SessionID,
			&sub.LeadName, &sub.LeadPhone, &sub.LeadEmail,
			&sub.Scenario, &sub.MonthlySavings,
			&sub.NewMortgageDurationYears, &sub.CanSave, &sub.FullDataJSON,
		); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		sub.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing submission timestamp: %w", err)
		}
		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}

type sqliteEvents struct {
	db *sql.DB
}

func (r *sqliteEvents) Save(event domain.Event) error {
	data, err := json.Marshal(event.EventData)
	if err != nil {
		return fmt.Errorf("encoding event data: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO events (id, created_at, session_id, event_type, event_data_json)
		 VALUES (?, ?, ?, ?, ?)`,
		event.ID,
		event.CreatedAt.Format(time.RFC3339Nano),
		event.SessionID,
		event.EventType,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *sqliteEvents) List() ([]domain.Event, error) {
	rows, err := r.db.Query(
		`SELECT id, created_at, session_id, event_type, event_data_json
		 FROM events
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var event domain.Event
		var createdAt, data string
		if err := rows.Scan(
			&event.ID, &createdAt, &event.SessionID, &event.EventType, &data,
		); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		event.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing event timestamp: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &event.EventData); err != nil {
			return nil, fmt.Errorf("decoding event data: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
