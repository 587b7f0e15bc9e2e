package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"belegcheck/internal/domain"
)

func TestIsRequiredFor(t *testing.T) {
	t.Run("recipient uid only above the large floor", func(t *testing.T) {
		assert.False(t, IsRequiredFor(domain.RuleRecipientUID, domain.AmountClassSmall))
		assert.False(t, IsRequiredFor(domain.RuleRecipientUID, domain.AmountClassStandard))
		assert.True(t, IsRequiredFor(domain.RuleRecipientUID, domain.AmountClassLarge))
	})

	t.Run("small invoices keep the reduced field set", func(t *testing.T) {
		assert.False(t, IsRequiredFor(domain.RuleInvoiceNumber, domain.AmountClassSmall))
		assert.False(t, IsRequiredFor(domain.RuleIssuerUID, domain.AmountClassSmall))
		assert.True(t, IsRequiredFor(domain.RuleIssuerName, domain.AmountClassSmall))
		assert.True(t, IsRequiredFor(domain.RuleGrossAmount, domain.AmountClassSmall))
	})

	t.Run("impossible vat rate is mandatory everywhere", func(t *testing.T) {
		for _, class := range []domain.AmountClass{domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge} {
			assert.True(t, IsRequiredFor(domain.RuleVatRateValid, class))
		}
	})

	t.Run("heuristic rules are never mandatory", func(t *testing.T) {
		for _, rule := range []domain.RuleID{
			domain.RuleIbanSyntax,
			domain.RuleIbanCheckDigit,
			domain.RuleReverseCharge,
			domain.RulePostalUIDConsistency,
			domain.RuleUIDRegistry,
		} {
			for _, class := range []domain.AmountClass{domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge} {
				assert.False(t, IsRequiredFor(rule, class), "rule %s class %s", rule, class)
			}
		}
	})

	t.Run("unknown rule is never required", func(t *testing.T) {
		assert.False(t, IsRequiredFor(domain.RuleID("future_rule"), domain.AmountClassLarge))
	})
}
