package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteLogin(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"token": "abc123", "message": "Login successful"}`))
	}))
	defer ts.Close()

	h := NewHolder(&Remote{BaseURL: ts.URL})
	assert.False(t, h.IsAuthenticated())

	require.NoError(t, h.Login(context.Background(), "admin", "admin123"))
	assert.True(t, h.IsAuthenticated())
	assert.Equal(t, "Bearer abc123", h.AuthHeaders().Get("Authorization"))
	assert.Equal(t, "application/json", h.AuthHeaders().Get("Content-Type"))

	h.Logout()
	assert.False(t, h.IsAuthenticated())
	assert.Empty(t, h.AuthHeaders().Get("Authorization"))
}

func TestRemoteLoginRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid username or password."}`))
	}))
	defer ts.Close()

	h := NewHolder(&Remote{BaseURL: ts.URL})
	err := h.Login(context.Background(), "admin", "wrong")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid username or password.", authErr.Message)
	assert.False(t, h.IsAuthenticated())
}

func TestRemoteLoginEmptyBodyFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	h := NewHolder(&Remote{BaseURL: ts.URL})
	err := h.Login(context.Background(), "admin", "wrong")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid username or password", authErr.Message)
}

func TestRemoteLoginMissingToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer ts.Close()

	h := NewHolder(&Remote{BaseURL: ts.URL})
	err := h.Login(context.Background(), "admin", "admin123")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Message, "no token received")
}

func TestLocalAuthenticator(t *testing.T) {
	h := NewHolder(Local{Username: "admin", Password: "admin123"})
	ctx := context.Background()

	err := h.Login(ctx, "admin", "nope")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)

	require.NoError(t, h.Login(ctx, "admin", "admin123"))
	assert.True(t, h.IsAuthenticated())
	assert.NotEmpty(t, h.AuthHeaders().Get("Authorization"))
}

func TestSecondLoginWins(t *testing.T) {
	tokens := []string{`{"token": "first"}`, `{"token": "second"}`}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tokens[0]))
		tokens = tokens[1:]
	}))
	defer ts.Close()

	h := NewHolder(&Remote{BaseURL: ts.URL})
	ctx := context.Background()
	require.NoError(t, h.Login(ctx, "admin", "admin123"))
	require.NoError(t, h.Login(ctx, "admin", "admin123"))
	assert.Equal(t, "Bearer second", h.AuthHeaders().Get("Authorization"))
}
