// Package validation implements the invoice compliance engine: the check
// suite, the rule-applicability table, the verdict aggregator, and the
// service facade that runs them for one invoice.
package validation

import (
	"github.com/shopspring/decimal"

	"belegcheck/internal/domain"
)

// Suite evaluates the synchronous compliance checks. All methods are pure
// functions of their input; the suite only carries configured jurisdiction
// parameters.
type Suite struct {
	domesticCountry string
	legalRates      []decimal.Decimal
	tolerance       decimal.Decimal
}

// NewSuite builds a check suite for one jurisdiction. legalRates is the
// closed set of VAT rates recognized by law (in percent); tolerance is the
// absolute rounding tolerance for amount reconciliation.
func NewSuite(domesticCountry string, legalRates []decimal.Decimal, tolerance decimal.Decimal) *Suite {
	return &Suite{
		domesticCountry: domesticCountry,
		legalRates:      legalRates,
		tolerance:       tolerance,
	}
}

// check builds one outcome, capping a missing-but-optional field at WARNING
// so the audit trail still records it.
func check(rule domain.RuleID, status domain.TrafficLightStatus, msg string, required bool) domain.ValidationCheck {
	return domain.ValidationCheck{Rule: rule, Status: status, Message: msg, Required: required}
}

// presence is the shared shape of the presence checks: a missing mandatory
// field is INVALID, a missing optional field is WARNING (reported, never
// silently omitted).
func presence(rule domain.RuleID, present bool, required bool, missingMsg string) domain.ValidationCheck {
	if present {
		return check(rule, domain.StatusValid, "", required)
	}
	if required {
		return check(rule, domain.StatusInvalid, missingMsg, required)
	}
	return check(rule, domain.StatusWarning, missingMsg+" (not required for this amount class)", required)
}

// Run evaluates every synchronous check exactly once, in rule order, for the
// given amount class. The registry check is not part of the suite; the
// service merges it in after the lookup completes.
func (s *Suite) Run(fields *domain.ExtractedFields, class domain.AmountClass) []domain.ValidationCheck {
	req := func(rule domain.RuleID) bool { return IsRequiredFor(rule, class) }

	return []domain.ValidationCheck{
		s.checkIssuerName(fields, req(domain.RuleIssuerName)),
		s.checkIssuerAddress(fields, req(domain.RuleIssuerAddress)),
		s.checkIssuerUID(fields, req(domain.RuleIssuerUID)),
		s.checkRecipientName(fields, req(domain.RuleRecipientName)),
		s.checkRecipientUID(fields, req(domain.RuleRecipientUID)),
		s.checkInvoiceNumber(fields, req(domain.RuleInvoiceNumber)),
		s.checkInvoiceDate(fields, req(domain.RuleInvoiceDate)),
		s.checkDeliveryDate(fields, req(domain.RuleDeliveryDate)),
		s.checkDescription(fields, req(domain.RuleDescription)),
		s.checkNetAmount(fields, req(domain.RuleNetAmount)),
		s.checkVatAmount(fields, req(domain.RuleVatAmount)),
		s.checkGrossAmount(fields, req(domain.RuleGrossAmount)),
		s.checkMath(fields, req(domain.RuleAmountsMatch)),
		s.checkVatRate(fields, req(domain.RuleVatRate)),
		s.checkVatRateValid(fields, req(domain.RuleVatRateValid)),
		s.checkUIDSyntax(fields, req(domain.RuleUIDSyntax)),
		s.checkIbanSyntax(fields, req(domain.RuleIbanSyntax)),
		s.checkIbanCheckDigit(fields, req(domain.RuleIbanCheckDigit)),
		s.checkReverseCharge(fields, req(domain.RuleReverseCharge)),
		s.checkForeignVat(fields, req(domain.RuleForeignVat)),
		s.checkPostalUIDConsistency(fields, req(domain.RulePostalUIDConsistency)),
	}
}
