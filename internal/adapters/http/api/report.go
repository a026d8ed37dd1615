package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/namepulse/pkg/logger"
)

// ReportHandler handles report requests.
type ReportHandler struct {
	provider ReportProvider
	log      logger.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(provider ReportProvider) *ReportHandler {
	return &ReportHandler{provider: provider, log: logger.Named("api")}
}

// HandleGetReport handles GET /api/report requests.
func (h *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rep, err := h.provider.Report(r.Context())
	if err != nil {
		h.log.Error(r.Context(), "report generation failed", logger.Error(err))
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(rep)
}
