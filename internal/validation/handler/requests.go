package handler

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"belegcheck/internal/domain"
)

// Date accepts the date-only form the extraction service emits as well as
// full RFC 3339 timestamps.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// AddressRequest mirrors domain.Address on the wire.
type AddressRequest struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// PartyRequest mirrors domain.Party on the wire.
type PartyRequest struct {
	Name    string         `json:"name"`
	UID     string         `json:"uid"`
	Address AddressRequest `json:"address"`
	Email   string         `json:"email"`
	IBAN    string         `json:"iban"`
}

// VatBreakdownEntryRequest is one multi-rate VAT breakdown line.
type VatBreakdownEntryRequest struct {
	Net  decimal.Decimal `json:"net"`
	Rate decimal.Decimal `json:"rate"`
	Vat  decimal.Decimal `json:"vat"`
}

// FieldsRequest is the extracted field bag on the wire. Amounts arrive as
// JSON numbers or numeric strings; absent means not extracted.
type FieldsRequest struct {
	Issuer    PartyRequest `json:"issuer"`
	Recipient PartyRequest `json:"recipient"`

	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   *Date  `json:"invoice_date"`
	DeliveryDate  *Date  `json:"delivery_date"`
	Description   string `json:"description"`

	NetAmount   *decimal.Decimal `json:"net_amount"`
	VatAmount   *decimal.Decimal `json:"vat_amount"`
	GrossAmount *decimal.Decimal `json:"gross_amount"`

	VatRate      *decimal.Decimal           `json:"vat_rate"`
	VatBreakdown []VatBreakdownEntryRequest `json:"vat_breakdown"`

	Currency      string `json:"currency"`
	ReverseCharge bool   `json:"reverse_charge"`
}

// ReferenceAmountRequest carries the reference-currency conversion.
type ReferenceAmountRequest struct {
	Gross    decimal.Decimal `json:"gross"`
	Rate     decimal.Decimal `json:"rate"`
	RateDate Date            `json:"rate_date"`
}

// EvaluateRequest is the POST /v1/validation/evaluate payload.
type EvaluateRequest struct {
	TenantID     uuid.UUID `json:"tenant_id"`
	InvoiceID    uuid.UUID `json:"invoice_id"`
	Direction    string    `json:"direction"`
	DocumentType string    `json:"document_type"`

	Fields FieldsRequest `json:"fields"`

	EstimatedReferenceGross *ReferenceAmountRequest `json:"estimated_reference_gross"`
}

// ToDomain maps the wire request onto the engine's input types.
func (r EvaluateRequest) ToDomain() (*domain.ExtractedFields, domain.ValidationContext) {
	f := r.Fields
	fields := &domain.ExtractedFields{
		Issuer:        toParty(f.Issuer),
		Recipient:     toParty(f.Recipient),
		InvoiceNumber: f.InvoiceNumber,
		InvoiceDate:   toTime(f.InvoiceDate),
		DeliveryDate:  toTime(f.DeliveryDate),
		Description:   f.Description,
		NetAmount:     f.NetAmount,
		VatAmount:     f.VatAmount,
		GrossAmount:   f.GrossAmount,
		VatRate:       f.VatRate,
		Currency:      f.Currency,
		ReverseCharge: f.ReverseCharge,
	}
	for _, entry := range f.VatBreakdown {
		fields.VatBreakdown = append(fields.VatBreakdown, domain.VatBreakdownEntry{
			Net:  entry.Net,
			Rate: entry.Rate,
			Vat:  entry.Vat,
		})
	}

	vctx := domain.ValidationContext{
		TenantID:     r.TenantID,
		InvoiceID:    r.InvoiceID,
		Direction:    domain.Direction(r.Direction),
		DocumentType: r.DocumentType,
	}
	if r.EstimatedReferenceGross != nil {
		vctx.EstimatedReferenceGross = &domain.ReferenceAmount{
			Gross:    r.EstimatedReferenceGross.Gross,
			Rate:     r.EstimatedReferenceGross.Rate,
			RateDate: r.EstimatedReferenceGross.RateDate.Time,
		}
	}
	return fields, vctx
}

func toParty(p PartyRequest) domain.Party {
	return domain.Party{
		Name: p.Name,
		UID:  p.UID,
		Address: domain.Address{
			Street:     p.Address.Street,
			PostalCode: p.Address.PostalCode,
			City:       p.Address.City,
			Country:    p.Address.Country,
		},
		Email: p.Email,
		IBAN:  p.IBAN,
	}
}

func toTime(d *Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
