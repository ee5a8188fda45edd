package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/seo-analyzer/backend/analyzer"
)

// PostgresSink persists analysis results to a Postgres database, one
// row per URL with the full result as JSONB.
type PostgresSink struct {
	db *sql.DB
}

// NewPostgresSink opens a connection to the given database and ensures
// the analyses table exists.
func NewPostgresSink(databaseURL string) (*PostgresSink, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sink := &PostgresSink{db: db}
	if err := sink.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sink, nil
}

func (s *PostgresSink) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id SERIAL PRIMARY KEY,
			url TEXT UNIQUE NOT NULL,
			overall_score INTEGER NOT NULL,
			issue_count INTEGER NOT NULL,
			result JSONB NOT NULL,
			analyzed_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_url ON analyses(url)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query %s: %w", query, err)
		}
	}

	return nil
}

// Store upserts the analysis result keyed by URL. A repeated analysis
// of the same page replaces the previous row.
func (s *PostgresSink) Store(ctx context.Context, result *analyzer.Analysis) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `
		INSERT INTO analyses (url, overall_score, issue_count, result, analyzed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (url) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			issue_count = EXCLUDED.issue_count,
			result = EXCLUDED.result,
			analyzed_at = EXCLUDED.analyzed_at`

	_, err = s.db.ExecContext(ctx, query,
		result.URL, result.OverallScore, len(result.Issues), payload, result.Timestamp)
	return err
}

func (s *PostgresSink) Close() error {
	return s.db.Close()
}
