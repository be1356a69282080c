package v1

import (
	"errors"
	"net/http"

	"github.com/vmunix/marquee/internal/session"
)

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	current, err := s.deps.Gate.Current(r.Context())
	if errors.Is(err, session.ErrNoSession) {
		writeJSON(w, http.StatusOK, sessionResponse{Authorized: false})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Authorized: true, Session: current})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds session.Credentials
	if err := decodeBody(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
		return
	}
	opened, err := s.deps.Gate.Login(r.Context(), creds)
	s.writeOpened(w, opened, err)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var reg session.Registration
	if err := decodeBody(w, r, &reg); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
		return
	}
	opened, err := s.deps.Gate.Register(r.Context(), reg)
	s.writeOpened(w, opened, err)
}

func (s *Server) writeOpened(w http.ResponseWriter, opened *session.Session, err error) {
	if errors.Is(err, session.ErrInvalidCredentials) {
		writeError(w, http.StatusBadRequest, "INVALID_CREDENTIALS", err.Error())
		return
	}
	if err != nil {
		s.log.Error("open session failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not open session")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Authorized: true, Session: opened})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Gate.Logout(r.Context()); err != nil {
		s.log.Error("logout failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not close session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
