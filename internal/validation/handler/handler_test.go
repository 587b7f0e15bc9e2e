package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belegcheck/internal/domain"
	"belegcheck/pkg/domerr"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

type stubService struct {
	out    *domain.ValidationOutput
	err    error
	fields *domain.ExtractedFields
	vctx   domain.ValidationContext
}

func (s *stubService) Evaluate(_ context.Context, fields *domain.ExtractedFields, vctx domain.ValidationContext) (*domain.ValidationOutput, error) {
	s.fields = fields
	s.vctx = vctx
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func newTestRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	h := New(svc, discardLogger())
	h.Register(r)
	return r
}

func TestHandleEvaluate_Success(t *testing.T) {
	svc := &stubService{
		out: &domain.ValidationOutput{
			OverallStatus: domain.StatusWarning,
			AmountClass:   domain.AmountClassStandard,
			Checks: []domain.ValidationCheck{
				{Rule: domain.RuleIssuerName, Status: domain.StatusValid, Required: true},
				{Rule: domain.RuleUIDRegistry, Status: domain.StatusWarning, Message: "issuer UID is not currently registered"},
			},
		},
	}
	router := newTestRouter(svc)

	body := `{
		"tenant_id": "0d4cd92e-3f59-47f6-9f14-42a8f2de3c1b",
		"invoice_id": "6f0b9f0a-7f5e-4a94-8d22-1f2f4b3a9d01",
		"direction": "incoming",
		"fields": {
			"issuer": {"name": "Test GmbH", "uid": "ATU12345678"},
			"invoice_date": "2025-05-12",
			"gross_amount": "1200",
			"net_amount": 1000,
			"vat_rate": "20"
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/validation/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "WARNING", resp.OverallStatus)
	assert.Equal(t, "STANDARD", resp.AmountClass)
	require.Len(t, resp.Checks, 2)
	assert.Equal(t, "issuer_name", resp.Checks[0].Rule)
	assert.Nil(t, resp.ViesInfo)

	// The DTO mapping must carry the parsed values through to the service.
	require.NotNil(t, svc.fields)
	assert.Equal(t, "Test GmbH", svc.fields.Issuer.Name)
	assert.Equal(t, "ATU12345678", svc.fields.Issuer.UID)
	require.NotNil(t, svc.fields.InvoiceDate)
	assert.Equal(t, "2025-05-12", svc.fields.InvoiceDate.Format("2006-01-02"))
	require.NotNil(t, svc.fields.GrossAmount)
	assert.True(t, svc.fields.GrossAmount.Equal(decimalFromString(t, "1200")))
	require.NotNil(t, svc.fields.NetAmount)
	assert.True(t, svc.fields.NetAmount.Equal(decimalFromString(t, "1000")))
	assert.Equal(t, uuid.MustParse("0d4cd92e-3f59-47f6-9f14-42a8f2de3c1b"), svc.vctx.TenantID)
	assert.Equal(t, domain.DirectionIncoming, svc.vctx.Direction)
}

func TestHandleEvaluate_StructuralErrorIsBadRequest(t *testing.T) {
	svc := &stubService{err: domerr.New(domerr.CodeInvalidInput, "tenant id is required")}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/validation/evaluate", strings.NewReader(`{"fields": {}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_input", resp.Error)
	assert.Contains(t, resp.Message, "tenant id")
}

func TestHandleEvaluate_MalformedBody(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/validation/evaluate", strings.NewReader(`{"tenant_id": `))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEvaluate_MalformedUUID(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/validation/evaluate",
		strings.NewReader(`{"tenant_id": "not-a-uuid", "fields": {}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
