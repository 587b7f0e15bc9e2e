// Package httptransport assembles the public HTTP surface. Handlers live with
// their feature packages; this router only mounts them and the operational
// endpoints.
package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"belegcheck/pkg/httputil"
)

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries everything the router mounts. Redis is optional; when nil the
// health endpoint only reports the process itself.
type Deps struct {
	Validation interface{ Register(chi.Router) }
	Redis      HealthChecker
}

// NewRouter wires all public endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth(deps.Redis))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		deps.Validation.Register(r)
	})

	return r
}

func handleHealth(redis HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		code := http.StatusOK
		if redis != nil {
			if err := redis.Health(r.Context()); err != nil {
				status["status"] = "degraded"
				status["redis"] = err.Error()
				code = http.StatusServiceUnavailable
			} else {
				status["redis"] = "ok"
			}
		}
		httputil.WriteJSON(w, code, status)
	}
}
