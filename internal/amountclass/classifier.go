// Package amountclass maps a monetary gross amount to the discrete size
// bucket that drives which invoice fields are legally mandatory.
package amountclass

import (
	"github.com/shopspring/decimal"

	"belegcheck/internal/domain"
)

// Classifier holds the configured bucket boundaries, expressed in the
// reference currency. The legal thresholds are configuration, not constants:
// they change with the law, not with the code.
type Classifier struct {
	referenceCurrency string
	smallCeiling      decimal.Decimal
	largeFloor        decimal.Decimal
}

// New builds a classifier. smallCeiling is inclusive (an amount exactly at
// the ceiling is still SMALL); largeFloor is exclusive (LARGE starts strictly
// above it).
func New(referenceCurrency string, smallCeiling, largeFloor decimal.Decimal) *Classifier {
	return &Classifier{
		referenceCurrency: referenceCurrency,
		smallCeiling:      smallCeiling,
		largeFloor:        largeFloor,
	}
}

// Classify buckets an invoice by its gross amount. Foreign-currency invoices
// classify on the converted reference-currency estimate, never on the raw
// figure, so bucket boundaries stay currency-invariant. An unknown amount
// defaults to STANDARD: neither the relaxed nor the stricter rule set can be
// assumed safe.
func (c *Classifier) Classify(gross *decimal.Decimal, currency string, estimate *domain.ReferenceAmount) domain.AmountClass {
	amount := gross
	if currency != "" && currency != c.referenceCurrency {
		if estimate == nil {
			return domain.AmountClassStandard
		}
		converted := estimate.Gross
		amount = &converted
	}
	if amount == nil {
		return domain.AmountClassStandard
	}

	switch {
	case amount.LessThanOrEqual(c.smallCeiling):
		return domain.AmountClassSmall
	case amount.GreaterThan(c.largeFloor):
		return domain.AmountClassLarge
	default:
		return domain.AmountClassStandard
	}
}
