package validation

import (
	"errors"
	"fmt"
	"strings"

	"belegcheck/internal/domain"
	"belegcheck/internal/identifier"
)

// reverseChargeNotices are the phrasings accepted as a reverse-charge notice
// in the description, matched case-insensitively.
var reverseChargeNotices = []string{
	"reverse charge",
	"reverse-charge",
	"übergang der steuerschuld",
	"steuerschuldnerschaft des leistungsempfängers",
}

// checkUIDSyntax applies the per-country pattern table to every UID the
// document states. Absent UIDs are the presence checks' concern.
func (s *Suite) checkUIDSyntax(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	stated := false
	for _, uid := range []string{f.Issuer.UID, f.Recipient.UID} {
		if strings.TrimSpace(uid) == "" {
			continue
		}
		stated = true
		if !identifier.CheckUIDSyntax(uid) {
			return check(domain.RuleUIDSyntax, domain.StatusInvalid,
				fmt.Sprintf("UID %q is not syntactically valid", uid), required)
		}
	}
	if !stated {
		return check(domain.RuleUIDSyntax, domain.StatusValid, "no UID stated", required)
	}
	return check(domain.RuleUIDSyntax, domain.StatusValid, "", required)
}

func (s *Suite) checkIbanSyntax(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	if strings.TrimSpace(f.Issuer.IBAN) == "" {
		return check(domain.RuleIbanSyntax, domain.StatusValid, "no IBAN stated", required)
	}
	if err := identifier.CheckIbanSyntax(f.Issuer.IBAN); err != nil {
		return check(domain.RuleIbanSyntax, domain.StatusInvalid,
			fmt.Sprintf("IBAN %q is malformed", f.Issuer.IBAN), required)
	}
	return check(domain.RuleIbanSyntax, domain.StatusValid, "", required)
}

// checkIbanCheckDigit reports a malformed IBAN and a checksum mismatch with
// distinct messages; both carry the same status.
func (s *Suite) checkIbanCheckDigit(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	if strings.TrimSpace(f.Issuer.IBAN) == "" {
		return check(domain.RuleIbanCheckDigit, domain.StatusValid, "no IBAN stated", required)
	}
	err := identifier.ValidateIbanCheckDigit(f.Issuer.IBAN)
	switch {
	case err == nil:
		return check(domain.RuleIbanCheckDigit, domain.StatusValid, "", required)
	case errors.Is(err, identifier.ErrIbanChecksum):
		return check(domain.RuleIbanCheckDigit, domain.StatusInvalid,
			fmt.Sprintf("IBAN %q fails the check-digit verification", f.Issuer.IBAN), required)
	default:
		return check(domain.RuleIbanCheckDigit, domain.StatusInvalid,
			fmt.Sprintf("IBAN %q is malformed, check digits not verifiable", f.Issuer.IBAN), required)
	}
}

// checkReverseCharge: an asserted reverse charge shifts the tax liability to
// the recipient, so the invoice must not charge VAT and should carry a
// notice. Inconsistencies stay WARNING: the flag itself may be an extraction
// error rather than a compliance defect.
func (s *Suite) checkReverseCharge(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	if !f.ReverseCharge {
		return check(domain.RuleReverseCharge, domain.StatusValid, "", required)
	}
	if f.VatAmount != nil && !f.VatAmount.IsZero() {
		return check(domain.RuleReverseCharge, domain.StatusWarning,
			fmt.Sprintf("reverse charge asserted but VAT amount %s is charged", f.VatAmount), required)
	}
	desc := strings.ToLower(f.Description)
	for _, notice := range reverseChargeNotices {
		if strings.Contains(desc, notice) {
			return check(domain.RuleReverseCharge, domain.StatusValid, "", required)
		}
	}
	return check(domain.RuleReverseCharge, domain.StatusWarning,
		"reverse charge asserted but no notice found in the description", required)
}

// checkForeignVat: a cross-border invoice from a non-domestic issuer must not
// charge a positive domestic VAT rate unless reverse charge is asserted.
func (s *Suite) checkForeignVat(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	issuerCountry := s.issuerCountry(f)
	if issuerCountry == "" || issuerCountry == s.domesticCountry {
		return check(domain.RuleForeignVat, domain.StatusValid, "", required)
	}
	if f.ReverseCharge {
		return check(domain.RuleForeignVat, domain.StatusValid, "", required)
	}
	if f.VatRate != nil && !f.VatRate.IsZero() && s.isLegalRate(*f.VatRate) {
		return check(domain.RuleForeignVat, domain.StatusInvalid,
			fmt.Sprintf("issuer from %s charges domestic VAT rate %s%% without reverse charge",
				issuerCountry, f.VatRate), required)
	}
	return check(domain.RuleForeignVat, domain.StatusValid, "", required)
}

// checkPostalUIDConsistency cross-checks the country implied by the issuer's
// postal code against the country implied by the UID prefix. Disagreement is
// either a data-entry error or a genuine cross-border setup; the heuristic
// never escalates past WARNING.
func (s *Suite) checkPostalUIDConsistency(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	uidCountry, ok := identifier.UIDCountry(f.Issuer.UID)
	if !ok || f.Issuer.Address.PostalCode == "" {
		return check(domain.RulePostalUIDConsistency, domain.StatusValid,
			"not comparable: UID or postal code missing", required)
	}
	if !identifier.PostalCodeAgrees(f.Issuer.Address.PostalCode, uidCountry) {
		return check(domain.RulePostalUIDConsistency, domain.StatusWarning,
			fmt.Sprintf("postal code %q does not look like %s, the country implied by the issuer UID",
				f.Issuer.Address.PostalCode, uidCountry), required)
	}
	return check(domain.RulePostalUIDConsistency, domain.StatusValid, "", required)
}

// issuerCountry resolves the issuer's country, preferring the UID prefix over
// the extracted address country.
func (s *Suite) issuerCountry(f *domain.ExtractedFields) string {
	if country, ok := identifier.UIDCountry(f.Issuer.UID); ok {
		return country
	}
	return f.Issuer.Address.Country
}
