package server

import (
	"net/http"
	"strconv"
	"time"

	"lexora-hq/themis/pkg/ledger"
)

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleCostsToday serves the daily aggregate. An optional date query
// parameter (YYYY-MM-DD, UTC) selects a day other than today.
func (s *Server) handleCostsToday(w http.ResponseWriter, r *http.Request) {
	var day time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	writeJSON(w, http.StatusOK, s.ledger.DailyTotals(day))
}

// recentResponse is the body of GET /admin/costs/recent.
type recentResponse struct {
	Requests []*ledger.RequestSummary `json:"requests"`
	Count    int                      `json:"count"`
}

// handleCostsRecent serves the most recently started completed requests.
// The limit query parameter is clamped to the configured maximum.
func (s *Server) handleCostsRecent(w http.ResponseWriter, r *http.Request) {
	limit := s.config.Ledger.RecentDefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit, expected a positive integer")
			return
		}
		limit = parsed
	}
	if limit > s.config.Ledger.RecentMaxLimit {
		limit = s.config.Ledger.RecentMaxLimit
	}

	requests := s.ledger.Recent(limit)
	if requests == nil {
		requests = []*ledger.RequestSummary{}
	}

	writeJSON(w, http.StatusOK, recentResponse{Requests: requests, Count: len(requests)})
}

// handleCostsRequest serves per-request detail. An unknown id is a 404, not
// a server error.
func (s *Server) handleCostsRequest(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")

	summary := s.ledger.Summary(requestID)
	if summary == nil {
		writeError(w, http.StatusNotFound, "request not found")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
