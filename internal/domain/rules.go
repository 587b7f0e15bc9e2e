package domain

// RuleID identifies one compliance rule. The set is closed: adding a rule
// means adding a constant here and an entry in AllRules, so an unrecognized
// id is a programming error, not a silent lookup miss.
type RuleID string

const (
	// Presence and identity rules.
	RuleIssuerName    RuleID = "issuer_name"
	RuleIssuerAddress RuleID = "issuer_address"
	RuleIssuerUID     RuleID = "issuer_uid"
	RuleRecipientName RuleID = "recipient_name"
	RuleRecipientUID  RuleID = "recipient_uid"
	RuleInvoiceNumber RuleID = "invoice_number"
	RuleInvoiceDate   RuleID = "invoice_date"
	RuleDeliveryDate  RuleID = "delivery_date"
	RuleDescription   RuleID = "description"

	// Numeric rules.
	RuleNetAmount    RuleID = "net_amount"
	RuleVatAmount    RuleID = "vat_amount"
	RuleGrossAmount  RuleID = "gross_amount"
	RuleAmountsMatch RuleID = "amounts_match"
	RuleVatRate      RuleID = "vat_rate"
	RuleVatRateValid RuleID = "vat_rate_valid"

	// Identifier syntax rules.
	RuleUIDSyntax      RuleID = "uid_syntax"
	RuleIbanSyntax     RuleID = "iban_syntax"
	RuleIbanCheckDigit RuleID = "iban_check_digit"

	// Cross-border and consistency rules.
	RuleReverseCharge        RuleID = "reverse_charge"
	RuleForeignVat           RuleID = "foreign_vat"
	RulePostalUIDConsistency RuleID = "postal_uid_consistency"

	// External registry rule.
	RuleUIDRegistry RuleID = "uid_registry"
)

// AllRules returns the complete, ordered rule set. A validation output must
// contain exactly one check per entry.
func AllRules() []RuleID {
	return []RuleID{
		RuleIssuerName,
		RuleIssuerAddress,
		RuleIssuerUID,
		RuleRecipientName,
		RuleRecipientUID,
		RuleInvoiceNumber,
		RuleInvoiceDate,
		RuleDeliveryDate,
		RuleDescription,
		RuleNetAmount,
		RuleVatAmount,
		RuleGrossAmount,
		RuleAmountsMatch,
		RuleVatRate,
		RuleVatRateValid,
		RuleUIDSyntax,
		RuleIbanSyntax,
		RuleIbanCheckDigit,
		RuleReverseCharge,
		RuleForeignVat,
		RulePostalUIDConsistency,
		RuleUIDRegistry,
	}
}
