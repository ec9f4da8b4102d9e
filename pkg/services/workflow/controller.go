package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/store"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/ingest"
	"github.com/Dogecat0/Aperilex-sub002/pkg/store/client"
	"github.com/Dogecat0/Aperilex-sub002/pkg/store/duckdb/analysis"
)

// Source is the subset of the analysis client the sync path needs.
type Source interface {
	GetAnalysis(ctx context.Context, accession string) ([]byte, error)
	ListAccessions(ctx context.Context) ([]string, error)
}

var _ Source = (*client.AnalysisClient)(nil)

// Controller moves analyses from the remote source into the local
// cache. Payloads are parsed before caching so a broken upstream
// payload never lands in the store.
type Controller struct {
	source Source
	store  analysis.Store
}

func NewController(source Source, store analysis.Store) *Controller {
	return &Controller{source: source, store: store}
}

// SyncOne fetches a single analysis and caches it, overwriting any
// prior payload for the accession.
func (c *Controller) SyncOne(ctx context.Context, accession string) error {
	logger := zerolog.Ctx(ctx)

	payload, err := c.source.GetAnalysis(ctx, accession)
	if err != nil {
		return fmt.Errorf("sync %s: %w", accession, err)
	}

	filing, err := ingest.ParsePayload(payload)
	if err != nil {
		return fmt.Errorf("sync %s: invalid payload: %w", accession, err)
	}

	record := store.AnalysisRecord{
		Accession:  accession,
		Ticker:     filing.Ticker,
		FilingType: filing.FilingType,
		FiledAt:    filing.FiledAt,
		Payload:    payload,
		CreatedAt:  time.Now().UTC(),
	}
	if err := c.store.Add(ctx, record); err != nil {
		return fmt.Errorf("sync %s: %w", accession, err)
	}

	logger.Info().
		Str("accession", accession).
		Str("ticker", filing.Ticker).
		Int("sections", len(filing.Sections)).
		Msg("analysis synced")
	return nil
}
