package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/market-atlas/pkg/adapters"
	"github.com/de-tools/market-atlas/pkg/models/api"
	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Defaults fill the parts of a report request the client left out
type Defaults struct {
	Weighting string
	Averaging domain.AveragingMode
}

type Handler struct {
	store    domain.Store
	weighers report.WeigherRegistry
	defaults Defaults
}

func NewHandler(store domain.Store, weighers report.WeigherRegistry, defaults Defaults) *Handler {
	if defaults.Weighting == "" {
		defaults.Weighting = report.WeightingIdentity
	}
	return &Handler{
		store:    store,
		weighers: weighers,
		defaults: defaults,
	}
}

func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, adapters.MapStoreDomainToCatalogApi(h.store))
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req api.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, api.Error{Error: "invalid request body: " + err.Error()})
		return
	}

	cfg := adapters.MapReportRequestApiToDomain(req)
	if cfg.Averaging == "" {
		cfg.Averaging = h.defaults.Averaging
	}
	weighting := req.Weighting
	if weighting == "" {
		weighting = h.defaults.Weighting
	}

	weigher, err := h.weighers.Create(weighting)
	if err != nil {
		writeError(w, r, err)
		return
	}

	runID := uuid.NewString()
	logger := zerolog.Ctx(r.Context()).With().Str("run_id", runID).Logger()
	ctx := logger.WithContext(r.Context())

	summary, err := report.NewPipeline(weigher).Run(ctx, cfg, h.store)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Info().
		Stringer("years", cfg.Years).
		Strs("regions", cfg.Regions).
		Str("weighting", weighting).
		Msg("report completed")
	writeJSON(w, r, http.StatusOK, adapters.MapRegionSummaryDomainToApi(runID, cfg.Years, summary))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, report.ErrConfiguration), errors.Is(err, report.ErrInvalidWeights):
		return http.StatusBadRequest
	case errors.Is(err, report.ErrEmptyResult):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to create report")
		message = http.StatusText(status)
	}
	writeJSON(w, r, status, api.Error{Error: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
