package domain

import "time"

// ValidationCheck is one rule evaluation outcome. Immutable once produced.
// Required records whether the rule was mandatory for the invoice's amount
// class; it is what the aggregator uses to cap optional-rule failures.
type ValidationCheck struct {
	Rule     RuleID
	Status   TrafficLightStatus
	Message  string
	Required bool
}

// ViesValidationInfo is the outcome of the external VAT-registry lookup.
// Produced fresh per call (possibly via a short-lived cache). A failed or
// unreachable lookup is represented with Valid=false and a non-empty Error,
// never with a raised error.
type ViesValidationInfo struct {
	CountryCode string
	VatNumber   string
	Valid       bool
	Name        string
	Address     string
	CheckedAt   time.Time

	// NameMatch is the similarity score between the registry's on-file name
	// and the extracted issuer name, in [0,1]. Only meaningful when Valid.
	NameMatch float64

	// Error describes why the lookup could not be completed. Empty on a
	// conclusive answer.
	Error string
}

// Conclusive reports whether the registry actually answered, regardless of
// whether the answer was "valid".
func (v ViesValidationInfo) Conclusive() bool {
	return v.Error == ""
}

// ValidationOutput is the full verdict for one invoice: exactly one check per
// defined rule, the derived amount class, and the aggregate status. ViesInfo
// is nil when no registry lookup was attempted (e.g. no syntactically valid
// issuer UID).
type ValidationOutput struct {
	OverallStatus TrafficLightStatus
	AmountClass   AmountClass
	Checks        []ValidationCheck
	ViesInfo      *ViesValidationInfo
}

// CheckFor returns the check for the given rule, or false when absent.
func (o *ValidationOutput) CheckFor(rule RuleID) (ValidationCheck, bool) {
	for _, c := range o.Checks {
		if c.Rule == rule {
			return c, true
		}
	}
	return ValidationCheck{}, false
}
