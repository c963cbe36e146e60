// Package session keeps the admin bearer token and logged-in flag for the
// lifetime of one client session. It is a convenience guard for admin views;
// the service re-checks the token on every privileged request.
package session

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// AuthError carries the rejection reason reported by the authenticator.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Authenticator verifies a credential pair and returns a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// Holder stores the token and logged-in flag. Concurrent logins are
// last-write-wins; there is no per-token bookkeeping.
type Holder struct {
	auth Authenticator

	mu       sync.Mutex
	token    string
	loggedIn bool
}

func NewHolder(auth Authenticator) *Holder {
	return &Holder{auth: auth}
}

func (h *Holder) Login(ctx context.Context, username, password string) error {
	token, err := h.auth.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.token = token
	h.loggedIn = true
	h.mu.Unlock()
	return nil
}

func (h *Holder) Logout() {
	h.mu.Lock()
	h.token = ""
	h.loggedIn = false
	h.mu.Unlock()
}

func (h *Holder) IsAuthenticated() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loggedIn
}

// AuthHeaders returns the headers for a privileged request: JSON content type
// plus the bearer token when one is held.
func (h *Holder) AuthHeaders() http.Header {
	h.mu.Lock()
	token := h.token
	h.mu.Unlock()

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	return headers
}

// Remote authenticates against the service's login endpoint.
type Remote struct {
	BaseURL string
	Client  *http.Client
}

func (a *Remote) Authenticate(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		Token string `json:"token"`
		Error string `json:"error"`
	}
	// Tolerate empty or malformed bodies; the status code decides.
	_ = json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = "invalid username or password"
		}
		return "", &AuthError{Message: msg}
	}
	if out.Token == "" {
		return "", &AuthError{Message: "login failed: no token received"}
	}
	return out.Token, nil
}

// Local checks the configured credential pair and mints an opaque token. The
// embedded backend has no server to mint one for it.
type Local struct {
	Username string
	Password string
}

func (a Local) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username != a.Username || password != a.Password {
		return "", &AuthError{Message: "invalid username or password"}
	}
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
