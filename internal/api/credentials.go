package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/havengate/havengate/internal/coordinator"
	"github.com/havengate/havengate/internal/store"
)

// createCredentialRequest is the request body for POST /admin/credentials.
type createCredentialRequest struct {
	TagID   string `json:"tagId"`
	OwnerID string `json:"ownerId"`
}

// handleCreateCredential registers a door credential for an owner.
// Admin only; the coordinator re-checks the principal's role.
func (s *Server) handleCreateCredential(w http.ResponseWriter, r *http.Request) {
	var req createCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.TagID == "" || req.OwnerID == "" {
		writeBadRequest(w, "tagId and ownerId are required")
		return
	}

	cred, err := s.coord.RegisterCredential(r.Context(), req.TagID, req.OwnerID, principalFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, coordinator.ErrForbidden):
			writeForbidden(w, "admin role required")
		case errors.Is(err, store.ErrCredentialExists):
			writeConflict(w, "tag already registered")
		case errors.Is(err, coordinator.ErrStorageUnavailable):
			s.logger.Error("credential registration failed", "error", err)
			writeStorageUnavailable(w)
		default:
			s.logger.Error("credential registration failed", "error", err)
			writeInternalError(w, "failed to register credential")
		}
		return
	}

	writeJSON(w, http.StatusCreated, cred)
}

// handleListCredentials returns all registered door credentials.
func (s *Server) handleListCredentials(w http.ResponseWriter, r *http.Request) {
	creds, err := s.coord.Credentials(r.Context())
	if err != nil {
		s.writeStateError(w, err, "failed to list credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"credentials": creds,
		"count":       len(creds),
	})
}
