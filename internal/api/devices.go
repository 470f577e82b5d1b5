package api

import (
	"errors"
	"net/http"

	"github.com/havengate/havengate/internal/coordinator"
)

// doorResponse is the response body for door status and toggle.
type doorResponse struct {
	DoorStatus string `json:"doorStatus"`
}

// lightResponse is the response body for light status and toggle.
type lightResponse struct {
	LightStatus string `json:"lightStatus"`
}

// handleGetDoor returns the persisted door status.
func (s *Server) handleGetDoor(w http.ResponseWriter, r *http.Request) {
	state, err := s.coord.DeviceState(r.Context())
	if err != nil {
		s.writeStateError(w, err, "failed to read door status")
		return
	}
	writeJSON(w, http.StatusOK, doorResponse{DoorStatus: string(state.DoorStatus)})
}

// handleToggleDoor flips the door between open and closed and returns
// the new status. The command is published after the state is persisted.
func (s *Server) handleToggleDoor(w http.ResponseWriter, r *http.Request) {
	next, err := s.coord.ToggleDoor(r.Context())
	if err != nil {
		s.writeStateError(w, err, "failed to toggle door")
		return
	}
	writeJSON(w, http.StatusOK, doorResponse{DoorStatus: string(next)})
}

// handleGetLight returns the persisted light status.
func (s *Server) handleGetLight(w http.ResponseWriter, r *http.Request) {
	state, err := s.coord.DeviceState(r.Context())
	if err != nil {
		s.writeStateError(w, err, "failed to read light status")
		return
	}
	writeJSON(w, http.StatusOK, lightResponse{LightStatus: string(state.LightStatus)})
}

// handleToggleLight flips the light between on and off and returns the new status.
func (s *Server) handleToggleLight(w http.ResponseWriter, r *http.Request) {
	next, err := s.coord.ToggleLight(r.Context())
	if err != nil {
		s.writeStateError(w, err, "failed to toggle light")
		return
	}
	writeJSON(w, http.StatusOK, lightResponse{LightStatus: string(next)})
}

// writeStateError maps coordinator state errors to HTTP responses.
func (s *Server) writeStateError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, coordinator.ErrStorageUnavailable) {
		s.logger.Error(logMsg, "error", err)
		writeStorageUnavailable(w)
		return
	}
	s.logger.Error(logMsg, "error", err)
	writeInternalError(w, logMsg)
}
