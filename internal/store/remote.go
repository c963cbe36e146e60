package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/csbs-dept/portal-api/internal/models"
	"github.com/csbs-dept/portal-api/internal/session"
	"github.com/csbs-dept/portal-api/internal/wire"
)

// client issues requests against the portal REST service. No retries and no
// layer-level timeout: a failed call is reported once, and deadlines belong
// to the caller's context or the transport.
type client struct {
	baseURL string
	http    *http.Client
	session *session.Holder
}

func (c *client) url(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

func (c *client) do(ctx context.Context, method, rawURL string, body []byte, privileged bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}
	if privileged {
		req.Header = c.session.AuthHeaders()
	} else {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

// apiError builds the caller-visible error for a non-success response,
// preferring the service's own message.
func apiError(resp *http.Response, fallback string) *APIError {
	var out struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	msg := out.Error
	if msg == "" {
		msg = fallback
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

// decodeDocument reads one record, mapping the service's `_id` key to `id`.
func decodeDocument[T any](r io.Reader) (*T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	norm, err := wire.Normalize(raw)
	if err != nil {
		return nil, err
	}
	var item T
	if err := json.Unmarshal(norm, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func decodeDocumentList[T any](r io.Reader, name string) []T {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		log.Printf("list %s: decode: %v", name, err)
		return nil
	}
	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		norm, err := wire.Normalize(raw)
		if err != nil {
			log.Printf("list %s: %v", name, err)
			continue
		}
		var item T
		if err := json.Unmarshal(norm, &item); err != nil {
			log.Printf("list %s: %v", name, err)
			continue
		}
		items = append(items, item)
	}
	return items
}

type remoteCollection[T any, P models.Patch[T]] struct {
	c    *client
	name string
}

func (rc *remoteCollection[T, P]) List(ctx context.Context) []T {
	resp, err := rc.c.do(ctx, http.MethodGet, rc.c.url(rc.name), nil, false)
	if err != nil {
		log.Printf("list %s: %v", rc.name, err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("list %s: status %d", rc.name, resp.StatusCode)
		return nil
	}
	return decodeDocumentList[T](resp.Body, rc.name)
}

func (rc *remoteCollection[T, P]) Get(ctx context.Context, id uint) (*T, error) {
	resp, err := rc.c.do(ctx, http.MethodGet, rc.c.url(rc.name, fmt.Sprint(id)), nil, false)
	if err != nil {
		return nil, fmt.Errorf("get %s/%d: %w", rc.name, id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, fmt.Sprintf("failed to fetch %s", rc.name))
	}
	return decodeDocument[T](resp.Body)
}

func (rc *remoteCollection[T, P]) Create(ctx context.Context, item *T) (*T, error) {
	body, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	resp, err := rc.c.do(ctx, http.MethodPost, rc.c.url(rc.name), body, true)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", rc.name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, "failed to add item")
	}
	return decodeDocument[T](resp.Body)
}

func (rc *remoteCollection[T, P]) Update(ctx context.Context, id uint, patch P) (*T, error) {
	body, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	resp, err := rc.c.do(ctx, http.MethodPut, rc.c.url(rc.name, fmt.Sprint(id)), body, true)
	if err != nil {
		return nil, fmt.Errorf("update %s/%d: %w", rc.name, id, err)
	}
	defer resp.Body.Close()
	// Updating a record that is gone mirrors the embedded backend: a no-op.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, "failed to update item")
	}
	return decodeDocument[T](resp.Body)
}

func (rc *remoteCollection[T, P]) Delete(ctx context.Context, id uint) bool {
	resp, err := rc.c.do(ctx, http.MethodDelete, rc.c.url(rc.name, fmt.Sprint(id)), nil, true)
	if err != nil {
		log.Printf("delete %s/%d: %v", rc.name, id, err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("delete %s/%d: status %d", rc.name, id, resp.StatusCode)
		return false
	}
	return true
}

type remoteRegistrations struct {
	c *client
}

func (rr *remoteRegistrations) List(ctx context.Context, eventID uint) []models.Registration {
	rawURL := rr.c.url(Registrations)
	if eventID != 0 {
		q := url.Values{}
		q.Set("eventId", fmt.Sprint(eventID))
		rawURL += "?" + q.Encode()
	}
	resp, err := rr.c.do(ctx, http.MethodGet, rawURL, nil, false)
	if err != nil {
		log.Printf("list %s: %v", Registrations, err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("list %s: status %d", Registrations, resp.StatusCode)
		return nil
	}
	return decodeDocumentList[models.Registration](resp.Body, Registrations)
}

// Create is the one public write: no bearer token attached.
func (rr *remoteRegistrations) Create(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	body, err := json.Marshal(reg)
	if err != nil {
		return nil, err
	}
	resp, err := rr.c.do(ctx, http.MethodPost, rr.c.url(Registrations), body, false)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", Registrations, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, "failed to register")
	}
	return decodeDocument[models.Registration](resp.Body)
}

func (rr *remoteRegistrations) Delete(ctx context.Context, id uint) bool {
	resp, err := rr.c.do(ctx, http.MethodDelete, rr.c.url(Registrations, fmt.Sprint(id)), nil, true)
	if err != nil {
		log.Printf("delete %s/%d: %v", Registrations, id, err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("delete %s/%d: status %d", Registrations, id, resp.StatusCode)
		return false
	}
	return true
}
