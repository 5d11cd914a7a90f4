package http

import (
	"net/http"
	"strings"

	"github.com/Flarenzy/ipv4kit/internal/auth"
)

func isPublicPath(path string) bool {
	return path == "/healthz" || path == "/readyz" || strings.HasPrefix(path, "/swagger/")
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.Authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || tokenStr == "" {
			a.writeError(w, r, http.StatusUnauthorized, "missing token")
			return
		}

		principal, err := a.Authenticator.Authenticate(r.Context(), tokenStr)
		if err != nil {
			a.Logger.InfoContext(r.Context(), "rejected bearer token", "request_id", RequestIDFromContext(r.Context()), "err", err.Error())
			a.writeError(w, r, http.StatusUnauthorized, "invalid token")
			return
		}

		a.Logger.DebugContext(r.Context(), "authenticated request", "request_id", RequestIDFromContext(r.Context()), "subject", principal.Subject)
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}
