// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"healthdash/internal/app"
	"healthdash/internal/logging"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	records   *app.RecordService
	dashboard *app.DashboardService
	log       logging.Logger
	webDir    string
}

// New creates a Server wired to the given application services. An empty
// webDir disables static file serving.
func New(rs *app.RecordService, ds *app.DashboardService, log logging.Logger, webDir string) *Server {
	return &Server{records: rs, dashboard: ds, log: log, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/records", s.handleRecords)
	api.HandleFunc("/records/preview", s.handleRecordPreview)
	api.HandleFunc("/dashboard", s.handleDashboard)
	api.HandleFunc("/charts/trend", s.handleChartsTrend)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if s.webDir != "" {
		root.Handle("/", spaFromDisk(s.webDir))
	}

	return s.loggingMiddleware(withNoCache(root))
}
