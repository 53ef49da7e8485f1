// Package journal persists composed readings to SQLite so they can be
// fetched, listed, and exported after the fact.
package journal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mirelabs/arcanum/internal/narrative"
	"github.com/mirelabs/arcanum/internal/reading"
	"github.com/mirelabs/arcanum/internal/reasoning"
)

var ErrNotFound = errors.New("reading not found")

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	reading_id      TEXT PRIMARY KEY,
	created_at      TEXT NOT NULL,
	spread_key      TEXT NOT NULL,
	context         TEXT NOT NULL DEFAULT 'general',
	question        TEXT NOT NULL DEFAULT '',
	deck            TEXT NOT NULL DEFAULT '',
	seed            INTEGER NOT NULL DEFAULT 0,
	status          TEXT NOT NULL,
	narrative       TEXT NOT NULL,
	fallback_reason TEXT NOT NULL DEFAULT '',
	expected_cards  INTEGER NOT NULL DEFAULT 0,
	received_cards  INTEGER NOT NULL DEFAULT 0,
	reasoning       TEXT,
	warnings        TEXT NOT NULL DEFAULT '[]',
	validation      TEXT NOT NULL DEFAULT '[]',
	report_markdown TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_readings_created_at ON readings (created_at);
`

// Store is a SQLite-backed reading journal. Single writer: the connection
// pool is capped at one, matching SQLite's own locking model.
type Store struct {
	db *sqlx.DB
}

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Save(r *reading.Reading) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO readings
		(reading_id, created_at, spread_key, context, question, deck, seed, status,
		narrative, fallback_reason, expected_cards, received_cards,
		reasoning, warnings, validation, report_markdown)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
		r.SpreadKey,
		r.Context,
		r.Question,
		r.Deck,
		int64(r.Seed),
		string(r.Status),
		r.Narrative,
		r.FallbackReason,
		r.ExpectedCards,
		r.ReceivedCards,
		reasoningJSON(r.Reasoning),
		marshalJSON(r.Warnings),
		marshalJSON(r.Validation),
		r.ReportMarkdown,
	)
	if err != nil {
		return fmt.Errorf("save reading %s: %w", r.ID, err)
	}
	return nil
}

func (s *Store) Get(id string) (*reading.Reading, error) {
	row := s.db.QueryRow(`SELECT reading_id, created_at, spread_key, context, question, deck, seed,
		status, narrative, fallback_reason, expected_cards, received_cards,
		reasoning, warnings, validation, report_markdown
		FROM readings WHERE reading_id = ?`, id)
	r, err := scanReading(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, err
}

// Recent returns the newest readings, most recent first.
func (s *Store) Recent(limit int) ([]*reading.Reading, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT reading_id, created_at, spread_key, context, question, deck, seed,
		status, narrative, fallback_reason, expected_cards, received_cards,
		reasoning, warnings, validation, report_markdown
		FROM readings ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*reading.Reading
	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (*reading.Reading, error) {
	var (
		r            reading.Reading
		createdAt    string
		seed         int64
		status       string
		reasoningRaw sql.NullString
		warningsRaw  string
		validRaw     string
	)
	if err := row.Scan(&r.ID, &createdAt, &r.SpreadKey, &r.Context, &r.Question, &r.Deck, &seed,
		&status, &r.Narrative, &r.FallbackReason, &r.ExpectedCards, &r.ReceivedCards,
		&reasoningRaw, &warningsRaw, &validRaw, &r.ReportMarkdown); err != nil {
		return nil, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	r.Seed = uint64(seed)
	r.Status = narrative.ResultStatus(status)
	if reasoningRaw.Valid && reasoningRaw.String != "" {
		var ch reasoning.Chain
		if json.Unmarshal([]byte(reasoningRaw.String), &ch) == nil {
			r.Reasoning = &ch
		}
	}
	_ = json.Unmarshal([]byte(warningsRaw), &r.Warnings)
	_ = json.Unmarshal([]byte(validRaw), &r.Validation)
	return &r, nil
}

func marshalJSON(v any) string {
	if v == nil {
		return "[]"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func reasoningJSON(ch *reasoning.Chain) sql.NullString {
	if ch == nil {
		return sql.NullString{}
	}
	b, err := json.Marshal(ch)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}
