package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/api"
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/store"
	analysisstore "github.com/Dogecat0/Aperilex-sub002/pkg/store/duckdb/analysis"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Add(ctx context.Context, record store.AnalysisRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockStore) GetByAccession(ctx context.Context, accession string) (*store.AnalysisRecord, error) {
	args := m.Called(ctx, accession)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.AnalysisRecord), args.Error(1)
}

func (m *mockStore) List(ctx context.Context) ([]store.AnalysisRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.AnalysisRecord), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	s := new(mockStore)
	s.On("List", mock.Anything).Return([]store.AnalysisRecord{
		{Accession: "0000320193-24-000123", Ticker: "AAPL", FilingType: "10-K", FiledAt: time.Now()},
	}, nil)
	s.On("GetByAccession", mock.Anything, "0000320193-24-000123").Return(
		&store.AnalysisRecord{
			Accession: "0000320193-24-000123",
			Payload:   []byte(`{"ticker": "AAPL", "sections": []}`),
		}, nil)
	s.On("GetByAccession", mock.Anything, "missing").Return(nil, analysisstore.ErrNotFound)

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Store: s,
		},
	})
	testServer := httptest.NewServer(webAPI.Router())
	defer testServer.Close()

	t.Run("list filings", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/filings")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var filings []api.FilingSummary
		require.NoError(t, json.Unmarshal(body, &filings))
		require.Len(t, filings, 1)
		assert.Equal(t, "AAPL", filings[0].Ticker)
	})

	t.Run("get rendered filing", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/filings/0000320193-24-000123")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var rendered api.RenderedFiling
		require.NoError(t, json.Unmarshal(body, &rendered))
		assert.Equal(t, "AAPL", rendered.Ticker)
		assert.Equal(t, "No analysis available", rendered.Placeholder)
	})

	t.Run("missing filing is 404", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/filings/missing")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	s.AssertExpectations(t)
}

func TestNewWebAPI_ShutdownTimeout(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	configured := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 3 * time.Second,
	})
	assert.Equal(t, 3*time.Second, configured.shutdownTimeout)

	// Zero config falls back to a sane deadline instead of an
	// immediately-expired shutdown context.
	fallback := NewWebAPI(logger, Config{Addr: ":8080"})
	assert.Equal(t, 10*time.Second, fallback.shutdownTimeout)
}
