package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luminashop/storefront-be/internal/auth"
	"github.com/luminashop/storefront-be/internal/config"
	"github.com/luminashop/storefront-be/internal/middleware"
	"github.com/luminashop/storefront-be/internal/models"
	"github.com/luminashop/storefront-be/internal/storage/memory"
)

// testEnv wires the handlers against an in-memory store behind the
// same middleware chain the real server uses.
type testEnv struct {
	server *httptest.Server
	store  *memory.Store
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{
		JWTSecret:    "test-secret",
		JWTIssuer:    "storefront-test",
		JWTTTL:       time.Hour,
		AdminEmail:   "owner@example.com",
		CookieSecure: false,
	}
	store := memory.NewStore()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	NewHealthHandler(time.Now()).Register(mux)
	NewAuthHandler(store, tokens, cfg, log).Register(mux)
	NewProductHandler(store, log).Register(mux)

	ts := httptest.NewServer(middleware.Session(tokens, mux))
	t.Cleanup(ts.Close)

	return &testEnv{server: ts, store: store, tokens: tokens}
}

// tokenFor mints a session token for a synthetic user of the given role.
func (e *testEnv) tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := e.tokens.Generate(models.User{
		ID:    "test-" + role,
		Email: role + "@example.com",
		Name:  "Test " + role,
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

// do issues a JSON request; token may be empty for anonymous calls.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}
