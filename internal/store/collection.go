// Package store is the data access layer of the portal. It exposes one CRUD
// contract with two interchangeable backends: an embedded key/value store
// seeded with default data for local development, and the portal's REST
// service for hosted deployments. Consumers pick a backend once, at startup,
// through New; nothing else in the application knows which one is active.
package store

import (
	"context"

	"github.com/csbs-dept/portal-api/internal/models"
)

// Collection names double as the embedded backend's storage keys and the
// service's URL paths.
const (
	Notices       = "notices"
	Events        = "events"
	Faculty       = "faculty"
	Students      = "students"
	Achievements  = "achievements"
	Registrations = "registrations"
)

// Collection is the uniform CRUD contract both backends implement.
type Collection[T any, P models.Patch[T]] interface {
	// List returns every record, most recent first. Backend failures degrade
	// to an empty slice; the error is logged, never returned, so listing code
	// can always render something.
	List(ctx context.Context) []T

	// Get returns nil for an unknown id. err is non-nil only when the backend
	// itself failed, which read paths may treat the same as absent.
	Get(ctx context.Context, id uint) (*T, error)

	// Create stores a new record and returns it with its assigned id.
	// Privileged on the remote backend for every collection except
	// registrations.
	Create(ctx context.Context, item *T) (*T, error)

	// Update merges the patch into the stored record field by field and
	// returns the result. An unknown id is a no-op returning nil, nil.
	Update(ctx context.Context, id uint, patch P) (*T, error)

	// Delete removes the record if present and reports whether the backend
	// accepted the operation. Deleting an id that is already gone from the
	// embedded backend still succeeds.
	Delete(ctx context.Context, id uint) bool
}

// registrations is the narrower contract for event registrations: created by
// the public, filtered by event, never updated.
type registrations interface {
	List(ctx context.Context, eventID uint) []models.Registration
	Create(ctx context.Context, reg *models.Registration) (*models.Registration, error)
	Delete(ctx context.Context, id uint) bool
}
