package http

import (
	"log/slog"
	"mime"
	"net/http"
	"strings"

	apperrors "github.com/vitacart/storefront/pkg/errors"
	"github.com/vitacart/storefront/pkg/httputil"

	"github.com/vitacart/storefront/internal/service"
)

// SessionHeader carries the storefront browsing session identifier. The
// client generates it once and sends it on every request; the server never
// issues session IDs.
const SessionHeader = "X-Session-ID"

func sessionID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(SessionHeader))
}

// RequireSession rejects requests that do not carry a session ID. Cart,
// checkout, and provider-portal routes are all meaningless without one.
func RequireSession(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessionID(r) == "" {
				httputil.WriteError(w, r, apperrors.InvalidInput(SessionHeader+" header is required"), logger)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth gates provider-portal routes behind the session login flag.
func RequireAuth(auth *service.AuthService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := auth.IsAuthenticated(r.Context(), sessionID(r))
			if err != nil {
				httputil.WriteError(w, r, apperrors.Internal(err), logger)
				return
			}
			if !ok {
				httputil.WriteError(w, r, apperrors.Unauthorized("login required"), logger)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ContentTypeJSON rejects bodied requests that are not JSON.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" {
				if mt, _, err := mime.ParseMediaType(ct); err != nil || mt != "application/json" {
					httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.Response{
						Error: &httputil.ErrorResponse{
							Code:    "UNSUPPORTED_MEDIA_TYPE",
							Message: "Content-Type must be application/json",
						},
					})
					return
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
