package report

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("validate: %w", report.ErrConfiguration), http.StatusBadRequest},
		{fmt.Errorf("validate: %w", report.ErrInvalidWeights), http.StatusBadRequest},
		{fmt.Errorf("average countries: %w", report.ErrEmptyResult), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestHandler_CreateReport_EmptySummary(t *testing.T) {
	store := domain.Store{Countries: []domain.Country{
		{
			Code: "FRA", RegionCode: "EU",
			Statistics: []domain.StatEntry{{StatCode: "Population", Year: 2010, Value: 1}},
		},
	}}
	h := NewHandler(store, report.DefaultWeigherRegistry(), Defaults{})

	body := `{"weights":{"Population":100},"years":{"start":2019,"end":2020},"regions":["EU"],"averaging":"observed"}`
	rec := httptest.NewRecorder()
	h.CreateReport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"regions":[]`)
}
