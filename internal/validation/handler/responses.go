package handler

import (
	"time"

	"belegcheck/internal/domain"
)

// CheckResponse is one rule outcome on the wire.
type CheckResponse struct {
	Rule     string `json:"rule"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Required bool   `json:"required"`
}

// ViesInfoResponse is the registry lookup detail, present only when a lookup
// was attempted.
type ViesInfoResponse struct {
	CountryCode string    `json:"country_code"`
	VatNumber   string    `json:"vat_number"`
	Valid       bool      `json:"valid"`
	Name        string    `json:"name,omitempty"`
	Address     string    `json:"address,omitempty"`
	CheckedAt   time.Time `json:"checked_at"`
	NameMatch   float64   `json:"name_match"`
	Error       string    `json:"error,omitempty"`
}

// EvaluateResponse is the POST /v1/validation/evaluate reply.
type EvaluateResponse struct {
	OverallStatus string            `json:"overall_status"`
	AmountClass   string            `json:"amount_class"`
	Checks        []CheckResponse   `json:"checks"`
	ViesInfo      *ViesInfoResponse `json:"vies_info,omitempty"`
}

func toResponse(out *domain.ValidationOutput) EvaluateResponse {
	resp := EvaluateResponse{
		OverallStatus: string(out.OverallStatus),
		AmountClass:   string(out.AmountClass),
		Checks:        make([]CheckResponse, 0, len(out.Checks)),
	}
	for _, c := range out.Checks {
		resp.Checks = append(resp.Checks, CheckResponse{
			Rule:     string(c.Rule),
			Status:   string(c.Status),
			Message:  c.Message,
			Required: c.Required,
		})
	}
	if out.ViesInfo != nil {
		resp.ViesInfo = &ViesInfoResponse{
			CountryCode: out.ViesInfo.CountryCode,
			VatNumber:   out.ViesInfo.VatNumber,
			Valid:       out.ViesInfo.Valid,
			Name:        out.ViesInfo.Name,
			Address:     out.ViesInfo.Address,
			CheckedAt:   out.ViesInfo.CheckedAt,
			NameMatch:   out.ViesInfo.NameMatch,
			Error:       out.ViesInfo.Error,
		}
	}
	return resp
}
