package httptransport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopRegistrar struct{}

func (noopRegistrar) Register(r chi.Router) {
	r.Post("/validation/evaluate", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

type failingHealth struct{}

func (failingHealth) Health(context.Context) error { return errors.New("connection refused") }

func TestRouter_Health(t *testing.T) {
	router := NewRouter(Deps{Validation: noopRegistrar{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestRouter_HealthDegradedWhenRedisDown(t *testing.T) {
	router := NewRouter(Deps{Validation: noopRegistrar{}, Redis: failingHealth{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestRouter_MountsValidationUnderV1(t *testing.T) {
	router := NewRouter(Deps{Validation: noopRegistrar{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/validation/evaluate", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router := NewRouter(Deps{Validation: noopRegistrar{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
