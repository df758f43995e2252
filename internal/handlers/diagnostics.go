package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"courses-backend/internal/httpx"
	"courses-backend/internal/transport"
)

const maxListedCollections = 10

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Programming Courses API is running",
	})
}

// Diagnostics reports store connectivity. It always answers 200; failures are
// described in the body.
func (s *Server) Diagnostics(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.Store.Connected() {
		resp.Database = "✅ Available"
		resp.DatabaseURL = setFlag(s.Cfg.DatabaseURL != "")
		resp.DatabaseName = setFlag(s.Cfg.DatabaseName != "")
		resp.ConnectionStatus = "Connected"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		names, err := s.Store.CollectionNames(ctx)
		if err != nil {
			log.Warn("diagnostics: list collections failed", slog.String("error", err.Error()))
			resp.Database = "⚠️  Connected but Error: " + httpx.TruncateError(err)
		} else {
			if len(names) > maxListedCollections {
				names = names[:maxListedCollections]
			}
			resp.Collections = names
			resp.Database = "✅ Connected & Working"
		}
	}

	log.Info("diagnostics: ok", slog.String("connection_status", resp.ConnectionStatus))
	transport.WriteJSON(w, http.StatusOK, resp)
}

func setFlag(set bool) *string {
	v := "❌ Not Set"
	if set {
		v = "✅ Set"
	}
	return &v
}
