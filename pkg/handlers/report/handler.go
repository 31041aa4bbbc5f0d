package report

import (
	"context"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/emilgroup/policy-report/pkg/models/domain"
	"github.com/emilgroup/policy-report/pkg/services/report"
)

// ReportGenerator runs the report pipeline for one date.
type ReportGenerator interface {
	Generate(ctx context.Context, date time.Time) ([]domain.AssembledRecord, error)
}

type Handler struct {
	generator ReportGenerator
}

func NewHandler(generator ReportGenerator) *Handler {
	return &Handler{generator: generator}
}

// GetReport generates the report for the date in the query (today when
// absent) and responds with the assembled records as a JSON array.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	date, err := report.ResolveDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.generator.Generate(ctx, date)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate report")
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []domain.AssembledRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		logger.Error().Err(err).Msg("failed to encode report response")
	}
}
