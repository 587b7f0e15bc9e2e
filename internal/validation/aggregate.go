package validation

import "belegcheck/internal/domain"

// Contribution is what one check adds to the aggregate: its own status, with
// one modifier. A rule that is not mandatory for the invoice's amount class
// contributes at most WARNING, so optional-field problems can never make an
// invoice fully non-compliant.
func Contribution(c domain.ValidationCheck) domain.TrafficLightStatus {
	if !c.Required && c.Status == domain.StatusInvalid {
		return domain.StatusWarning
	}
	return c.Status
}

// Aggregate folds all check contributions into the overall verdict: the
// worst contribution under the severity order INVALID > WARNING > PENDING >
// VALID. Pure in the check list, so idempotent and order-independent.
func Aggregate(checks []domain.ValidationCheck) domain.TrafficLightStatus {
	overall := domain.StatusValid
	for _, c := range checks {
		overall = domain.Worst(overall, Contribution(c))
	}
	return overall
}
