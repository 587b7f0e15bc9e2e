package validation

import (
	"strings"
	"time"

	"belegcheck/internal/domain"
)

func (s *Suite) checkIssuerName(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return presence(domain.RuleIssuerName,
		strings.TrimSpace(f.Issuer.Name) != "", required,
		"issuer name missing")
}

func (s *Suite) checkIssuerAddress(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	addr := f.Issuer.Address
	if addr.IsEmpty() {
		return presence(domain.RuleIssuerAddress, false, required, "issuer address missing")
	}
	if addr.PostalCode == "" || addr.City == "" {
		return check(domain.RuleIssuerAddress, domain.StatusWarning,
			"issuer address incomplete: postal code or city missing", required)
	}
	return check(domain.RuleIssuerAddress, domain.StatusValid, "", required)
}

func (s *Suite) checkIssuerUID(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return presence(domain.RuleIssuerUID,
		strings.TrimSpace(f.Issuer.UID) != "", required,
		"issuer UID missing")
}

func (s *Suite) checkRecipientName(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return presence(domain.RuleRecipientName,
		strings.TrimSpace(f.Recipient.Name) != "", required,
		"recipient name missing")
}

func (s *Suite) checkRecipientUID(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return presence(domain.RuleRecipientUID,
		strings.TrimSpace(f.Recipient.UID) != "", required,
		"recipient UID missing")
}

func (s *Suite) checkInvoiceNumber(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return presence(domain.RuleInvoiceNumber,
		strings.TrimSpace(f.InvoiceNumber) != "", required,
		"invoice number missing")
}

func (s *Suite) checkInvoiceDate(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	if f.InvoiceDate == nil || f.InvoiceDate.IsZero() {
		return presence(domain.RuleInvoiceDate, false, required, "invoice date missing")
	}
	// A clearly future-dated invoice is suspicious extraction output but not
	// a formal defect on its own.
	if f.InvoiceDate.After(time.Now().AddDate(0, 0, 1)) {
		return check(domain.RuleInvoiceDate, domain.StatusWarning,
			"invoice date lies in the future", required)
	}
	return check(domain.RuleInvoiceDate, domain.StatusValid, "", required)
}

func (s *Suite) checkDeliveryDate(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return presence(domain.RuleDeliveryDate,
		f.DeliveryDate != nil && !f.DeliveryDate.IsZero(), required,
		"delivery date missing")
}

func (s *Suite) checkDescription(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return presence(domain.RuleDescription,
		strings.TrimSpace(f.Description) != "", required,
		"description of goods or services missing")
}
