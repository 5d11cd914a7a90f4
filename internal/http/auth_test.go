package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Flarenzy/ipv4kit/internal/auth"
	"github.com/Flarenzy/ipv4kit/internal/domain"
)

type stubAuthenticator struct {
	authenticateFn func(context.Context, string) (auth.Principal, error)
}

func (s stubAuthenticator) Authenticate(ctx context.Context, bearerToken string) (auth.Principal, error) {
	if s.authenticateFn == nil {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return s.authenticateFn(ctx, bearerToken)
}

func newTestAPI() *API {
	return &API{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Authenticator: stubAuthenticator{
			authenticateFn: func(_ context.Context, token string) (auth.Principal, error) {
				if token != "good-token" {
					return auth.Principal{}, auth.ErrInvalidToken
				}
				return auth.Principal{Issuer: "http://keycloak.local/realms/ipv4kit", Subject: "user-1"}, nil
			},
		},
	}
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAuthMiddlewareAllowsPublicPathsWithoutToken(t *testing.T) {
	api := newTestAPI()
	handler := api.authMiddleware(http.HandlerFunc(noContent))

	for _, path := range []string{"/healthz", "/readyz", "/swagger/index.html"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: expected %d, got %d", path, http.StatusNoContent, rec.Code)
		}
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	api := newTestAPI()
	handler := api.authMiddleware(http.HandlerFunc(noContent))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/netmasks/validate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMiddlewareRejectsNonBearerScheme(t *testing.T) {
	api := newTestAPI()
	handler := api.authMiddleware(http.HandlerFunc(noContent))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/netmasks/validate", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	api := newTestAPI()
	handler := api.authMiddleware(http.HandlerFunc(noContent))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/netmasks/validate", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	api := newTestAPI()
	called := false
	handler := api.authMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			t.Error("expected principal in context")
		}
		if principal.Subject != "user-1" {
			t.Errorf("unexpected subject: %v", principal.Subject)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/netmasks/validate", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
	if !called {
		t.Fatal("expected downstream handler to be called")
	}
}

func TestRouterEnforcesAuthOnAPIRoutes(t *testing.T) {
	api := NewAPI(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		domain.NewAddressService(),
		newTestAPI().Authenticator,
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses/1", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/addresses/1", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec = httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}
