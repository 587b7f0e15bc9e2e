package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Address is a postal address as extracted from the document. Country is the
// ISO 3166-1 alpha-2 code when the extractor could determine it, else empty.
type Address struct {
	Street     string
	PostalCode string
	City       string
	Country    string
}

// IsEmpty reports whether no address component was extracted at all.
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.PostalCode == "" && a.City == "" && a.Country == ""
}

// Party is one side of the invoice (issuer or recipient).
type Party struct {
	Name    string
	UID     string // VAT identification number, country-prefixed
	Address Address
	Email   string
	IBAN    string
}

// VatBreakdownEntry is one line of a multi-rate VAT breakdown: the net base,
// the applied rate in percent, and the resulting VAT amount.
type VatBreakdownEntry struct {
	Net  decimal.Decimal
	Rate decimal.Decimal
	Vat  decimal.Decimal
}

// ExtractedFields is the bag of invoice fields produced by the upstream
// extraction service. The engine reads it for the duration of one validation
// call and never mutates or retains it. Monetary fields are nil when the
// extractor could not produce a value; amounts are extraction-normalized
// decimals, never locale-formatted strings.
type ExtractedFields struct {
	Issuer    Party
	Recipient Party

	InvoiceNumber string
	InvoiceDate   *time.Time
	DeliveryDate  *time.Time
	Description   string

	NetAmount   *decimal.Decimal
	VatAmount   *decimal.Decimal
	GrossAmount *decimal.Decimal

	// VatRate is the single stated rate in percent. Exactly one of VatRate
	// and VatBreakdown is expected for invoices that state VAT at all.
	VatRate      *decimal.Decimal
	VatBreakdown []VatBreakdownEntry

	Currency      string
	ReverseCharge bool
}

// ReferenceAmount carries the reference-currency conversion of a
// foreign-currency gross amount, as supplied by the currency collaborator.
type ReferenceAmount struct {
	Gross    decimal.Decimal
	Rate     decimal.Decimal
	RateDate time.Time
}

// ValidationContext is the non-field context for one validation call.
// EstimatedReferenceGross must be set for invoices not denominated in the
// reference currency, since size-bucket thresholds are defined there.
type ValidationContext struct {
	TenantID  uuid.UUID
	InvoiceID uuid.UUID

	Direction    Direction
	DocumentType string

	EstimatedReferenceGross *ReferenceAmount
}
