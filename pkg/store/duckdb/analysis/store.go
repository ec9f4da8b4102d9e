package analysis

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/store"
	"github.com/Dogecat0/Aperilex-sub002/pkg/store/duckdb"
)

// ErrNotFound is returned when no analysis is cached for an accession.
var ErrNotFound = errors.New("analysis not found")

// Store caches fetched filing analyses keyed by accession number.
type Store interface {
	Add(ctx context.Context, record store.AnalysisRecord) error
	GetByAccession(ctx context.Context, accession string) (*store.AnalysisRecord, error)
	List(ctx context.Context) ([]store.AnalysisRecord, error)
}

type analysisStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &analysisStore{db: db}, nil
}

func (s *analysisStore) Add(ctx context.Context, record store.AnalysisRecord) error {
	if record.Accession == "" {
		return fmt.Errorf("accession is required")
	}

	query := `
		INSERT OR REPLACE INTO analyses (
			accession, ticker, filing_type, filed_at, payload, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?
		)`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx := duckdb.GetTransaction(ctx)
	var err error
	if tx == nil {
		_, err = s.db.ExecContext(ctx, query,
			record.Accession, record.Ticker, record.FilingType,
			record.FiledAt, string(record.Payload), createdAt)
	} else {
		_, err = tx.ExecContext(ctx, query,
			record.Accession, record.Ticker, record.FilingType,
			record.FiledAt, string(record.Payload), createdAt)
	}
	if err != nil {
		return fmt.Errorf("insert analysis %s: %w", record.Accession, err)
	}
	return nil
}

func (s *analysisStore) GetByAccession(ctx context.Context, accession string) (*store.AnalysisRecord, error) {
	// The payload column is JSON-typed; select it as text so the raw
	// bytes come back unchanged and record key order survives.
	query := `
		SELECT accession, ticker, filing_type, filed_at, payload::VARCHAR, created_at
		FROM analyses
		WHERE accession = ?`

	var record store.AnalysisRecord
	var payload string
	err := s.db.QueryRowContext(ctx, query, accession).Scan(
		&record.Accession, &record.Ticker, &record.FilingType,
		&record.FiledAt, &payload, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query analysis %s: %w", accession, err)
	}
	record.Payload = []byte(payload)
	return &record, nil
}

func (s *analysisStore) List(ctx context.Context) ([]store.AnalysisRecord, error) {
	query := `
		SELECT accession, ticker, filing_type, filed_at, created_at
		FROM analyses
		ORDER BY filed_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var records []store.AnalysisRecord
	for rows.Next() {
		var record store.AnalysisRecord
		if err := rows.Scan(
			&record.Accession, &record.Ticker, &record.FilingType,
			&record.FiledAt, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis row: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
