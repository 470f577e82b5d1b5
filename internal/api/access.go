package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/havengate/havengate/internal/coordinator"
)

// doorAccessRequest is the request body for POST /door/access.
type doorAccessRequest struct {
	TagID string `json:"tagId"`
}

// doorAccessResponse is the response body for a granted access request.
type doorAccessResponse struct {
	Access  string `json:"access"`
	TagID   string `json:"tagId"`
	OwnerID string `json:"ownerId"`
}

// handleDoorAccess checks a presented tag against the credential registry.
// A registered tag unlocks the door; an unknown tag is denied with no
// command published.
func (s *Server) handleDoorAccess(w http.ResponseWriter, r *http.Request) {
	var req doorAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.TagID == "" {
		writeBadRequest(w, "tagId is required")
		return
	}

	cred, err := s.coord.RequestDoorUnlock(r.Context(), req.TagID)
	if err != nil {
		if errors.Is(err, coordinator.ErrAccessDenied) {
			writeForbidden(w, "access denied")
			return
		}
		if errors.Is(err, coordinator.ErrStorageUnavailable) {
			s.logger.Error("door access lookup failed", "error", err)
			writeStorageUnavailable(w)
			return
		}
		s.logger.Error("door access failed", "error", err)
		writeInternalError(w, "door access failed")
		return
	}

	writeJSON(w, http.StatusOK, doorAccessResponse{
		Access:  "granted",
		TagID:   cred.TagID,
		OwnerID: cred.OwnerID,
	})
}
