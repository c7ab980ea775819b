package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/portfolio-backend/internal/common"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// requireAuth reads the access token from the Authorization header and the
// refresh token from its dedicated header, runs the single authorization
// decision, and either rejects the request with 401 or stores the subject in
// the request context. Both tokens are optional on the wire; the gate
// decides.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := bearerToken(r.Header.Get(common.AccessTokenHeaderName))
		refreshToken := r.Header.Get(common.RefreshTokenHeaderName)

		decision := s.gate.Authorize(accessToken, refreshToken)
		if !decision.Admitted {
			s.logger.Debug(r.Context(), "request denied", "reason", decision.Reason)
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: decision.Reason})
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, decision.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SubjectFromContext returns the authenticated subject stored by requireAuth.
func SubjectFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(subjectKey).(int64)
	return id, ok
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
