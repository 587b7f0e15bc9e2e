package domain

// TrafficLightStatus is the four-valued compliance severity used both for
// individual checks and for the aggregated verdict.
type TrafficLightStatus string

const (
	// StatusValid means the check passed (or, in aggregate, all checks passed).
	StatusValid TrafficLightStatus = "VALID"

	// StatusPending means the check could not be completed, typically because
	// an external collaborator was unreachable. Indeterminate, not failed.
	StatusPending TrafficLightStatus = "PENDING"

	// StatusWarning means a non-blocking defect: the invoice is usable but
	// should be reviewed by a human.
	StatusWarning TrafficLightStatus = "WARNING"

	// StatusInvalid means a blocking formal defect.
	StatusInvalid TrafficLightStatus = "INVALID"
)

// severityRank orders statuses for aggregation. An indeterminate result is
// worse than a confirmed pass but better than a confirmed violation:
// INVALID > WARNING > PENDING > VALID.
func (s TrafficLightStatus) severityRank() int {
	switch s {
	case StatusInvalid:
		return 3
	case StatusWarning:
		return 2
	case StatusPending:
		return 1
	default:
		return 0
	}
}

// Worst returns the more severe of the two statuses.
func Worst(a, b TrafficLightStatus) TrafficLightStatus {
	if b.severityRank() > a.severityRank() {
		return b
	}
	return a
}

// IsKnown reports whether s is one of the four defined statuses.
func (s TrafficLightStatus) IsKnown() bool {
	switch s {
	case StatusValid, StatusPending, StatusWarning, StatusInvalid:
		return true
	}
	return false
}

// AmountClass is the size bucket that drives which invoice fields are legally
// mandatory. Derived from the gross amount, never stored independently.
type AmountClass string

const (
	// AmountClassSmall covers small-value invoices (Kleinbetragsrechnung),
	// which enjoy a reduced set of mandatory fields.
	AmountClassSmall AmountClass = "SMALL"

	// AmountClassStandard is the default bucket.
	AmountClassStandard AmountClass = "STANDARD"

	// AmountClassLarge covers high-value invoices for which additional
	// recipient identification becomes mandatory.
	AmountClassLarge AmountClass = "LARGE"
)

// Direction distinguishes incoming (payable) from outgoing (receivable)
// invoices.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)
