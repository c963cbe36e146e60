package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/csbs-dept/portal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture servers emit records the way the real service does, with the
// document-native `_id` key.

func newRemoteTestStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	st, err := New(context.Background(), Options{Backend: BackendRemote, BaseURL: ts.URL})
	require.NoError(t, err)
	return st
}

func TestRemoteListNormalizesID(t *testing.T) {
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notices", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id": 3, "title": "Exam schedule", "category": "urgent"}, {"_id": 1, "title": "Old", "category": "general"}]`))
	}))

	notices := st.Notices.List(context.Background())
	require.Len(t, notices, 2)
	assert.Equal(t, uint(3), notices[0].ID)
	assert.Equal(t, "Exam schedule", notices[0].Title)
	assert.Equal(t, uint(1), notices[1].ID)
}

func TestRemoteListDegradesToEmpty(t *testing.T) {
	t.Run("unreachable service", func(t *testing.T) {
		st, err := New(context.Background(), Options{Backend: BackendRemote, BaseURL: "http://127.0.0.1:1"})
		require.NoError(t, err)
		assert.Empty(t, st.Events.List(context.Background()))
	})

	t.Run("server error", func(t *testing.T) {
		st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		assert.Empty(t, st.Events.List(context.Background()))
	})

	t.Run("malformed body", func(t *testing.T) {
		st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		assert.Empty(t, st.Events.List(context.Background()))
	})
}

func TestRemoteGet(t *testing.T) {
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/students/7":
			w.Write([]byte(`{"_id": 7, "name": "Meera Rajendran", "rollNo": "CSBS2201", "year": 2, "section": "A", "email": "m@x", "cgpa": 8.9}`))
		case "/students/99":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Student not found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	ctx := context.Background()

	got, err := st.Students.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "Meera Rajendran", got.Name)

	absent, err := st.Students.Get(ctx, 99)
	require.NoError(t, err, "not found is absence, not an error")
	assert.Nil(t, absent)

	_, err = st.Students.Get(ctx, 1)
	assert.Error(t, err, "a server failure is distinct from absence")
}

func TestRemoteCreateAttachesBearerToken(t *testing.T) {
	var gotAuth string
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"token": "test-token"}`))
		case "/notices":
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"_id": 42, "title": "Created"}`))
		}
	}))
	ctx := context.Background()

	require.NoError(t, st.Login(ctx, "admin", "admin123"))
	created, err := st.Notices.Create(ctx, &models.Notice{Title: "Created"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, uint(42), created.ID)
}

func TestRemoteCreateSurfacesServerMessage(t *testing.T) {
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "title is required"})
	}))

	_, err := st.Notices.Create(context.Background(), &models.Notice{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "title is required", apiErr.Message)
}

func TestRemoteCreateGenericFallbackMessage(t *testing.T) {
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := st.Notices.Create(context.Background(), &models.Notice{Title: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "failed to add item", apiErr.Message)
}

func TestRemoteUpdateUnknownIDIsNoop(t *testing.T) {
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Notice not found"}`))
	}))

	title := "x"
	updated, err := st.Notices.Update(context.Background(), 999, models.NoticePatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRemoteUpdateSendsOnlyPatchedFields(t *testing.T) {
	var body map[string]json.RawMessage
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"_id": 5, "title": "New title"}`))
	}))

	title := "New title"
	updated, err := st.Notices.Update(context.Background(), 5, models.NoticePatch{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Contains(t, body, "title")
	assert.NotContains(t, body, "content", "absent patch fields stay out of the request")
	assert.NotContains(t, body, "author")
}

func TestRemoteDelete(t *testing.T) {
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/faculty/1" {
			w.Write([]byte(`{"message": "Faculty deleted"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Faculty not found"}`))
	}))
	ctx := context.Background()

	assert.True(t, st.Faculty.Delete(ctx, 1))
	assert.False(t, st.Faculty.Delete(ctx, 99))
}

func TestRemoteRegistrations(t *testing.T) {
	var listQuery, createAuth string
	st := newRemoteTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/login":
			w.Write([]byte(`{"token": "test-token"}`))
		case r.URL.Path == "/registrations" && r.Method == http.MethodGet:
			listQuery = r.URL.RawQuery
			w.Write([]byte(`[{"_id": 9, "eventId": 5, "fullName": "S"}]`))
		case r.URL.Path == "/registrations" && r.Method == http.MethodPost:
			createAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"_id": 10, "eventId": 5, "fullName": "S"}`))
		}
	}))
	ctx := context.Background()

	regs := st.Registrations(ctx, 5)
	require.Len(t, regs, 1)
	assert.Equal(t, "eventId=5", listQuery)
	assert.Equal(t, uint(9), regs[0].ID)

	// Registration submission is public even when an admin session exists.
	require.NoError(t, st.Login(ctx, "admin", "admin123"))
	created, err := st.Register(ctx, &models.Registration{EventID: 5, FullName: "S"})
	require.NoError(t, err)
	assert.Equal(t, uint(10), created.ID)
	assert.Empty(t, createAuth)
}
