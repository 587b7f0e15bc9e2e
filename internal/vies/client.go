// Package vies verifies issuer identity against the EU VAT registry: a REST
// client for the check-vat service, a normalized company-name similarity
// score, and a verifier that degrades registry failures to an inconclusive
// outcome instead of erroring.
package vies

//go:generate mockgen -source=client.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"belegcheck/internal/domain"
)

// Client is the outbound registry lookup. Implementations return an error for
// any failure to obtain a conclusive answer (timeout, non-2xx, malformed
// payload); the verifier converts those into the degraded outcome.
type Client interface {
	CheckVat(ctx context.Context, countryCode, vatNumber string) (*domain.ViesValidationInfo, error)
}

// RESTClient talks to the VIES REST check-vat-number endpoint.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRESTClient builds a client for the given base URL, e.g. the official
// "https://ec.europa.eu/taxation_customs/vies/rest-api". The timeout bounds
// each lookup end to end.
func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// checkVatResponse mirrors the registry's JSON payload. The registry reports
// "---" as a sentinel when name or address are not on file.
type checkVatResponse struct {
	CountryCode string `json:"countryCode"`
	VatNumber   string `json:"vatNumber"`
	RequestDate string `json:"requestDate"`
	Valid       bool   `json:"valid"`
	Name        string `json:"name"`
	Address     string `json:"address"`
}

const noDataSentinel = "---"

// CheckVat queries the registry for one UID, split into country code and
// number.
func (c *RESTClient) CheckVat(ctx context.Context, countryCode, vatNumber string) (*domain.ViesValidationInfo, error) {
	url := fmt.Sprintf("%s/ms/%s/vat/%s", c.baseURL, countryCode, vatNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	var payload checkVatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode registry response: %w", err)
	}

	info := &domain.ViesValidationInfo{
		CountryCode: payload.CountryCode,
		VatNumber:   payload.VatNumber,
		Valid:       payload.Valid,
		Name:        payload.Name,
		Address:     payload.Address,
		CheckedAt:   time.Now(),
	}
	if payload.Name == noDataSentinel {
		info.Name = ""
	}
	if payload.Address == noDataSentinel {
		info.Address = ""
	}
	return info, nil
}
