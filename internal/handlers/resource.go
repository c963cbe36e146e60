package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/csbs-dept/portal-api/internal/wire"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// ResourceOptions tunes the generic document routes for one collection.
type ResourceOptions[T any] struct {
	// Label is the singular name used in error payloads ("Notice not found").
	Label string
	// OrderBy is the list ordering; default is newest first by id.
	OrderBy string
	// PublicCreate opens POST to unauthenticated callers (registrations).
	PublicCreate bool
	// NoUpdate removes the PUT route (registrations are never edited).
	NoUpdate bool
	// Filters maps query parameters to columns for list filtering.
	Filters map[string]string
	// Created, when set, runs after a successful create (notifications).
	Created func(item *T)
}

// Resource registers document CRUD routes for one collection: list and get
// are public, writes sit behind requireAuth unless the options say otherwise.
func Resource[T any](r chi.Router, db *gorm.DB, requireAuth func(http.Handler) http.Handler, path string, opts ResourceOptions[T]) {
	res := &resource[T]{db: db, opts: opts}
	r.Route("/"+path, func(r chi.Router) {
		r.Get("/", res.list)
		r.Get("/{id}", res.get)
		if opts.PublicCreate {
			r.Post("/", res.create)
		} else {
			r.With(requireAuth).Post("/", res.create)
		}
		if !opts.NoUpdate {
			r.With(requireAuth).Put("/{id}", res.update)
		}
		r.With(requireAuth).Delete("/{id}", res.delete)
	})
}

type resource[T any] struct {
	db   *gorm.DB
	opts ResourceOptions[T]
}

func (res *resource[T]) list(w http.ResponseWriter, r *http.Request) {
	q := res.db.WithContext(r.Context()).Model(new(T))
	for param, column := range res.opts.Filters {
		if v := r.URL.Query().Get(param); v != "" {
			q = q.Where(column+" = ?", v)
		}
	}
	order := res.opts.OrderBy
	if order == "" {
		order = "id DESC"
	}

	var items []T
	if err := q.Order(order).Find(&items).Error; err != nil {
		wire.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	docs := make([]json.RawMessage, 0, len(items))
	for i := range items {
		doc, err := wire.Document(items[i])
		if err != nil {
			wire.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		docs = append(docs, doc)
	}
	wire.WriteJSON(w, http.StatusOK, docs)
}

func (res *resource[T]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := res.paramID(w, r)
	if !ok {
		return
	}
	var item T
	err := res.db.WithContext(r.Context()).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wire.WriteError(w, http.StatusNotFound, res.opts.Label+" not found")
		return
	}
	if err != nil {
		wire.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	res.respondDocument(w, http.StatusOK, &item)
}

func (res *resource[T]) create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		wire.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// The store assigns identifiers; one sent by the client is ignored.
	if rec, ok := any(&item).(interface{ SetEntityID(uint) }); ok {
		rec.SetEntityID(0)
	}

	if err := res.db.WithContext(r.Context()).Create(&item).Error; err != nil {
		wire.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if res.opts.Created != nil {
		res.opts.Created(&item)
	}
	res.respondDocument(w, http.StatusCreated, &item)
}

func (res *resource[T]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := res.paramID(w, r)
	if !ok {
		return
	}
	var item T
	err := res.db.WithContext(r.Context()).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wire.WriteError(w, http.StatusNotFound, res.opts.Label+" not found")
		return
	}
	if err != nil {
		wire.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	patch, err := io.ReadAll(r.Body)
	if err != nil {
		wire.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := mergeJSON(&item, patch); err != nil {
		wire.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := res.db.WithContext(r.Context()).Save(&item).Error; err != nil {
		wire.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	res.respondDocument(w, http.StatusOK, &item)
}

func (res *resource[T]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := res.paramID(w, r)
	if !ok {
		return
	}
	var item T
	err := res.db.WithContext(r.Context()).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wire.WriteError(w, http.StatusNotFound, res.opts.Label+" not found")
		return
	}
	if err != nil {
		wire.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := res.db.WithContext(r.Context()).Delete(&item).Error; err != nil {
		wire.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	wire.WriteJSON(w, http.StatusOK, map[string]string{"message": res.opts.Label + " deleted"})
}

func (res *resource[T]) paramID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		wire.WriteError(w, http.StatusNotFound, res.opts.Label+" not found")
		return 0, false
	}
	return uint(id), true
}

func (res *resource[T]) respondDocument(w http.ResponseWriter, status int, item *T) {
	doc, err := wire.Document(item)
	if err != nil {
		wire.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	wire.WriteJSON(w, status, doc)
}

// mergeJSON overlays the fields present in patch onto item, leaving every
// other field as stored. Identifier keys in the patch are discarded.
func mergeJSON[T any](item *T, patch []byte) error {
	base, err := json.Marshal(item)
	if err != nil {
		return err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return err
	}
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(out, item)
}
