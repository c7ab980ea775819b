package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/portfolio-backend/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError maps service errors onto HTTP status codes. Raw internal error
// text never reaches the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, common.ErrorUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, common.ErrMissingDeployedURL),
		errors.Is(err, common.ErrUnknownURLType),
		errors.Is(err, common.ErrInvalidPhotoSet),
		errors.Is(err, common.ErrInvalidOrderSet):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// renewedTokens is embedded in every successful protected response,
// implementing the sliding session: the client replaces its stored pair on
// each call.
type renewedTokens struct {
	NewToken        string `json:"newToken"`
	NewRefreshToken string `json:"newRefreshToken"`
}

// renew produces the fresh pair for the authenticated subject. A renewal
// failure means a signing misconfiguration and is reported as a server
// fault, but never blocks.
func (s *Server) renew(w http.ResponseWriter, r *http.Request) (renewedTokens, bool) {
	subject, ok := SubjectFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return renewedTokens{}, false
	}
	pair, err := s.renewer.Renew(subject)
	if err != nil {
		s.logger.Error(r.Context(), "token renewal failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return renewedTokens{}, false
	}
	return renewedTokens{NewToken: pair.AccessToken, NewRefreshToken: pair.RefreshToken}, true
}
