package validation

import "belegcheck/internal/domain"

// requiredFor is the static rule-applicability table: for every rule, the
// amount classes for which the rule is mandatory under §11 UStG formal
// requirements. Rules absent from the table are never mandatory, so adding a
// new check cannot accidentally make invoices non-compliant before the table
// is updated.
//
// Small-value invoices (Kleinbetragsrechnung) get the reduced field set;
// above the large floor the recipient's UID becomes mandatory as well.
// Heuristic rules (postal/UID consistency, IBAN, reverse charge, registry)
// are never mandatory: their failures cap at WARNING during aggregation.
var requiredFor = map[domain.RuleID][]domain.AmountClass{
	domain.RuleIssuerName:    {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleIssuerAddress: {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleInvoiceDate:   {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleDeliveryDate:  {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleDescription:   {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleGrossAmount:   {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleVatRate:       {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleAmountsMatch:  {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleForeignVat:    {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},

	// An impossible tax rate is never acceptable, so the rule is mandatory
	// for every class and its INVALID outcome is never capped.
	domain.RuleVatRateValid: {domain.AmountClassSmall, domain.AmountClassStandard, domain.AmountClassLarge},

	domain.RuleIssuerUID:     {domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleRecipientName: {domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleInvoiceNumber: {domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleNetAmount:     {domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleVatAmount:     {domain.AmountClassStandard, domain.AmountClassLarge},
	domain.RuleUIDSyntax:     {domain.AmountClassStandard, domain.AmountClassLarge},

	domain.RuleRecipientUID: {domain.AmountClassLarge},
}

// IsRequiredFor reports whether the rule is mandatory at the given amount
// class. Unknown rules are never mandatory (fails closed to "not required").
func IsRequiredFor(rule domain.RuleID, class domain.AmountClass) bool {
	for _, c := range requiredFor[rule] {
		if c == class {
			return true
		}
	}
	return false
}
