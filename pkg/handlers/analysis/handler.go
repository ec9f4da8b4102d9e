package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Dogecat0/Aperilex-sub002/pkg/adapters"
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/api"
	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/ingest"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/render"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/workflow"
	analysisstore "github.com/Dogecat0/Aperilex-sub002/pkg/store/duckdb/analysis"
)

type Handler struct {
	store analysisstore.Store
	ctrl  *workflow.Controller
}

func NewHandler(store analysisstore.Store, ctrl *workflow.Controller) *Handler {
	return &Handler{store: store, ctrl: ctrl}
}

func (h *Handler) ListFilings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	records, err := h.store.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list filings")
		http.Error(w, "failed to list filings", http.StatusInternalServerError)
		return
	}

	response := make([]api.FilingSummary, 0, len(records))
	for _, record := range records {
		response = append(response, adapters.MapAnalysisRecordStoreToApi(record))
	}
	writeJSON(ctx, w, response)
}

func (h *Handler) GetRenderedFiling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	accession := chi.URLParam(r, "accession")

	filing, ok := h.loadFiling(w, r, accession)
	if !ok {
		return
	}

	rendered, err := render.RenderFiling(filing, expandedFromQuery(r))
	if err != nil {
		var structural *render.StructuralError
		if errors.As(err, &structural) {
			logger.Error().Err(err).Str("accession", accession).Msg("malformed analysis structure")
			http.Error(w, "analysis structure is invalid", http.StatusUnprocessableEntity)
			return
		}
		logger.Error().Err(err).Str("accession", accession).Msg("render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, adapters.MapRenderedFilingDomainToApi(rendered))
}

func (h *Handler) GetSections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accession := chi.URLParam(r, "accession")

	filing, ok := h.loadFiling(w, r, accession)
	if !ok {
		return
	}

	response := make([]api.SectionSummary, 0, len(filing.Sections))
	for _, section := range filing.Sections {
		response = append(response, api.SectionSummary{
			Name:             section.Name,
			DisplayName:      render.DisplayName(section.Name),
			OverallSentiment: section.OverallSentiment,
			SubSectionCount:  len(section.SubSections),
		})
	}
	writeJSON(ctx, w, response)
}

func (h *Handler) SyncFiling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	accession := chi.URLParam(r, "accession")

	if err := h.ctrl.SyncOne(ctx, accession); err != nil {
		logger.Error().Err(err).Str("accession", accession).Msg("sync failed")
		http.Error(w, "sync failed", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) loadFiling(w http.ResponseWriter, r *http.Request, accession string) (domain.Filing, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	record, err := h.store.GetByAccession(ctx, accession)
	if errors.Is(err, analysisstore.ErrNotFound) {
		http.Error(w, "filing not found", http.StatusNotFound)
		return domain.Filing{}, false
	}
	if err != nil {
		logger.Error().Err(err).Str("accession", accession).Msg("failed to load filing")
		http.Error(w, "failed to load filing", http.StatusInternalServerError)
		return domain.Filing{}, false
	}

	filing, err := ingest.ParsePayload(record.Payload)
	if err != nil {
		logger.Error().Err(err).Str("accession", accession).Msg("cached payload is invalid")
		http.Error(w, "cached payload is invalid", http.StatusInternalServerError)
		return domain.Filing{}, false
	}
	return filing, true
}

// expandedFromQuery builds the expand/collapse set from the `expanded`
// query parameter, a comma-separated list of exact section names. The
// set stays owned by the caller side of the API; the renderer only
// reads it.
func expandedFromQuery(r *http.Request) domain.ExpandedSections {
	expanded := domain.NewExpandedSections()
	raw := r.URL.Query().Get("expanded")
	if raw == "" {
		return expanded
	}
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			expanded.Toggle(name)
		}
	}
	return expanded
}

func writeJSON(ctx context.Context, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
