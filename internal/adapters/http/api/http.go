// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/namepulse/internal/report"
)

// ReportProvider supplies the current report. Keeping an interface here
// keeps the handler layer loosely coupled to the generator.
type ReportProvider interface {
	Report(ctx context.Context) (*report.Report, error)
}

// Server wires HTTP routes for the report API.
type Server struct {
	reportHandler *ReportHandler
	healthHandler *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(provider ReportProvider) *Server {
	return &Server{
		reportHandler: NewReportHandler(provider),
		healthHandler: NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/api/report", MetricsMiddleware(s.reportHandler.HandleGetReport, "report"))
}
