package analysis

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/store"
	"github.com/Dogecat0/Aperilex-sub002/pkg/store/duckdb"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func sampleRecord(accession string, filedAt time.Time) store.AnalysisRecord {
	return store.AnalysisRecord{
		Accession:  accession,
		Ticker:     "AAPL",
		FilingType: "10-K",
		FiledAt:    filedAt,
		Payload:    []byte(`{"accession_number": "` + accession + `", "sections": []}`),
	}
}

func TestAnalysisStore_Add(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("success - add record", func(t *testing.T) {
		record := sampleRecord("0000320193-24-000123", time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC))

		err := f.store.Add(ctx, record)
		require.NoError(t, err)

		var count int
		err = f.db.QueryRow("SELECT COUNT(*) FROM analyses WHERE accession = ?", record.Accession).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("success - re-adding replaces the cached payload", func(t *testing.T) {
		record := sampleRecord("0000320193-24-000200", time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC))
		require.NoError(t, f.store.Add(ctx, record))

		record.Payload = []byte(`{"accession_number": "0000320193-24-000200", "executive_summary": "updated"}`)
		require.NoError(t, f.store.Add(ctx, record))

		got, err := f.store.GetByAccession(ctx, record.Accession)
		require.NoError(t, err)
		assert.Contains(t, string(got.Payload), "updated")
	})

	t.Run("error - missing accession", func(t *testing.T) {
		err := f.store.Add(ctx, store.AnalysisRecord{Payload: []byte(`{}`)})
		assert.Error(t, err)
	})
}

func TestAnalysisStore_GetByAccession(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	record := sampleRecord("0000320193-24-000123", time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, f.store.Add(ctx, record))

	t.Run("success", func(t *testing.T) {
		got, err := f.store.GetByAccession(ctx, record.Accession)
		require.NoError(t, err)
		assert.Equal(t, record.Accession, got.Accession)
		assert.Equal(t, "AAPL", got.Ticker)
		// Byte-for-byte: the payload text must survive the JSON column
		// unchanged so field order is preserved downstream.
		assert.Equal(t, string(record.Payload), string(got.Payload))
	})

	t.Run("error - not found", func(t *testing.T) {
		_, err := f.store.GetByAccession(ctx, "0000000000-00-000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAnalysisStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	older := sampleRecord("0000320193-23-000100", time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC))
	newer := sampleRecord("0000320193-24-000123", time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, f.store.Add(ctx, older))
	require.NoError(t, f.store.Add(ctx, newer))

	records, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recently filed first.
	assert.Equal(t, newer.Accession, records[0].Accession)
	assert.Equal(t, older.Accession, records[1].Accession)
}

func TestAnalysisStore_AddWithinTransaction(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	tx, err := f.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := duckdb.WithTransaction(ctx, tx)
	require.NoError(t, f.store.Add(txCtx, sampleRecord("0000320193-24-000300", time.Now().UTC())))
	require.NoError(t, tx.Commit())

	_, err = f.store.GetByAccession(ctx, "0000320193-24-000300")
	require.NoError(t, err)
}
