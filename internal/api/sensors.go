package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Readings query limits. History responses never exceed the ten most
// recent readings; smaller limits narrow the window.
const (
	defaultReadingsLimit = 10
	maxReadingsLimit     = 10
)

// handleListReadings returns the most recent readings for a sensor type,
// newest first.
//
// Query parameters:
//   - limit: maximum readings to return (default 10, capped at 10)
func (s *Server) handleListReadings(w http.ResponseWriter, r *http.Request) {
	sensorType := chi.URLParam(r, "type")
	if sensorType == "" {
		writeBadRequest(w, "sensor type is required")
		return
	}

	limit := defaultReadingsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxReadingsLimit {
		limit = maxReadingsLimit
	}

	readings, err := s.coord.Readings(r.Context(), sensorType, limit)
	if err != nil {
		s.writeStateError(w, err, "failed to list readings")
		return
	}

	// Unknown sensor types yield an empty list, not a 404; the set of
	// types is open-ended (any sensors/<type> publisher).
	writeJSON(w, http.StatusOK, map[string]any{
		"sensorType": sensorType,
		"readings":   readings,
		"count":      len(readings),
	})
}
