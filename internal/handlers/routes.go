package handlers

import (
	"context"
	"time"

	"github.com/csbs-dept/portal-api/internal/auth"
	"github.com/csbs-dept/portal-api/internal/models"
	"github.com/csbs-dept/portal-api/internal/notifier"
	"github.com/csbs-dept/portal-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// apiError is the service's error payload. Installed as huma's error type so
// every endpoint, typed or not, answers failures the same way.
type apiError struct {
	status  int
	Message string `json:"error"`
}

func (e *apiError) Error() string  { return e.Message }
func (e *apiError) GetStatus() int { return e.status }

type HealthOutput struct {
	Body struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
}

func handleHealth(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	res := &HealthOutput{}
	res.Body.Status = "ok"
	res.Body.Timestamp = time.Now().UTC()
	return res, nil
}

func RegisterRoutes(r *chi.Mux, db *gorm.DB, authHandler *auth.AuthHandler, n notifier.Notifier) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return &apiError{status: status, Message: message}
	}

	// Initialize Huma API
	config := huma.DefaultConfig("CSBS Department Portal API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:   "http",
			Scheme: "bearer",
		},
	}
	api := humachi.New(r, config)

	huma.Get(api, "/api/health", handleHealth)
	huma.Post(api, "/api/auth/login", authHandler.HandleLogin)

	r.Route("/api", func(r chi.Router) {
		requireAuth := authHandler.Middleware

		Resource(r, db, requireAuth, store.Notices, ResourceOptions[models.Notice]{
			Label:   "Notice",
			OrderBy: "date DESC, id DESC",
			Created: func(item *models.Notice) {
				if n != nil {
					n.NoticePosted(*item)
				}
			},
		})
		Resource(r, db, requireAuth, store.Events, ResourceOptions[models.Event]{
			Label: "Event",
		})
		Resource(r, db, requireAuth, store.Faculty, ResourceOptions[models.Faculty]{
			Label: "Faculty",
		})
		Resource(r, db, requireAuth, store.Students, ResourceOptions[models.Student]{
			Label: "Student",
		})
		Resource(r, db, requireAuth, store.Achievements, ResourceOptions[models.Achievement]{
			Label: "Achievement",
		})
		Resource(r, db, requireAuth, store.Registrations, ResourceOptions[models.Registration]{
			Label:        "Registration",
			OrderBy:      "registered_at DESC",
			PublicCreate: true,
			NoUpdate:     true,
			Filters:      map[string]string{"eventId": "event_id"},
			Created: func(item *models.Registration) {
				if n != nil {
					n.RegistrationReceived(*item)
				}
			},
		})
	})
}
