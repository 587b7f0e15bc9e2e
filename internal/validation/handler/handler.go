package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"belegcheck/internal/domain"
	"belegcheck/pkg/httputil"
)

// Service defines the interface for validation operations.
type Service interface {
	Evaluate(ctx context.Context, fields *domain.ExtractedFields, vctx domain.ValidationContext) (*domain.ValidationOutput, error)
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validation/evaluate", h.HandleEvaluate)
}

// HandleEvaluate handles POST /validation/evaluate requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, ok := httputil.Decode[EvaluateRequest](w, r)
	if !ok {
		return
	}

	fields, vctx := req.ToDomain()

	out, err := h.service.Evaluate(ctx, fields, vctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "invoice evaluation failed",
			"tenant_id", req.TenantID,
			"invoice_id", req.InvoiceID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.DebugContext(ctx, "invoice evaluation served",
		"tenant_id", req.TenantID,
		"invoice_id", req.InvoiceID,
		"overall_status", out.OverallStatus,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, toResponse(out))
}
