package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"belegcheck/internal/domain"
)

// amountCheck covers the three monetary presence checks: present, numeric
// (guaranteed by the input contract), and non-negative.
func amountCheck(rule domain.RuleID, amount *decimal.Decimal, required bool, name string) domain.ValidationCheck {
	if amount == nil {
		return presence(rule, false, required, name+" missing")
	}
	if amount.IsNegative() {
		return check(rule, domain.StatusInvalid, name+" is negative", required)
	}
	return check(rule, domain.StatusValid, "", required)
}

func (s *Suite) checkNetAmount(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return amountCheck(domain.RuleNetAmount, f.NetAmount, required, "net amount")
}

func (s *Suite) checkVatAmount(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return amountCheck(domain.RuleVatAmount, f.VatAmount, required, "VAT amount")
}

func (s *Suite) checkGrossAmount(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	return amountCheck(domain.RuleGrossAmount, f.GrossAmount, required, "gross amount")
}

// checkMath verifies net + VAT == gross within the rounding tolerance. With a
// multi-rate breakdown it additionally reconciles the breakdown sums against
// the gross amount and each entry's own net×rate against its VAT. When the
// amounts needed for a comparison are absent the check passes: missing
// amounts are the presence checks' concern, and a small-value invoice may
// legitimately state only a gross amount.
func (s *Suite) checkMath(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	if len(f.VatBreakdown) > 0 {
		return s.checkBreakdownMath(f, required)
	}
	if f.NetAmount == nil || f.VatAmount == nil || f.GrossAmount == nil {
		return check(domain.RuleAmountsMatch, domain.StatusValid,
			"arithmetic not verifiable: amounts not fully stated", required)
	}
	sum := f.NetAmount.Add(*f.VatAmount)
	if diff := sum.Sub(*f.GrossAmount).Abs(); diff.GreaterThan(s.tolerance) {
		return check(domain.RuleAmountsMatch, domain.StatusInvalid,
			fmt.Sprintf("net %s + VAT %s = %s does not match gross %s",
				f.NetAmount, f.VatAmount, sum, f.GrossAmount), required)
	}
	return check(domain.RuleAmountsMatch, domain.StatusValid, "", required)
}

func (s *Suite) checkBreakdownMath(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	hundred := decimal.NewFromInt(100)
	totalNet := decimal.Zero
	totalVat := decimal.Zero

	for i, entry := range f.VatBreakdown {
		expected := entry.Net.Mul(entry.Rate).Div(hundred)
		if diff := expected.Sub(entry.Vat).Abs(); diff.GreaterThan(s.tolerance) {
			return check(domain.RuleAmountsMatch, domain.StatusInvalid,
				fmt.Sprintf("breakdown entry %d: net %s at %s%% yields %s, stated VAT is %s",
					i+1, entry.Net, entry.Rate, expected.Round(2), entry.Vat), required)
		}
		totalNet = totalNet.Add(entry.Net)
		totalVat = totalVat.Add(entry.Vat)
	}

	if f.GrossAmount == nil {
		return check(domain.RuleAmountsMatch, domain.StatusValid,
			"breakdown consistent; gross amount not stated", required)
	}
	sum := totalNet.Add(totalVat)
	if diff := sum.Sub(*f.GrossAmount).Abs(); diff.GreaterThan(s.tolerance) {
		return check(domain.RuleAmountsMatch, domain.StatusInvalid,
			fmt.Sprintf("VAT breakdown sums to %s, gross amount is %s", sum, f.GrossAmount), required)
	}
	return check(domain.RuleAmountsMatch, domain.StatusValid, "", required)
}

// checkVatRate verifies a rate is stated at all. Reverse-charge invoices
// legitimately state none.
func (s *Suite) checkVatRate(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	if f.VatRate != nil || len(f.VatBreakdown) > 0 {
		return check(domain.RuleVatRate, domain.StatusValid, "", required)
	}
	if f.ReverseCharge {
		return check(domain.RuleVatRate, domain.StatusValid,
			"no VAT rate stated: reverse charge asserted", required)
	}
	return presence(domain.RuleVatRate, false, required, "VAT rate missing")
}

// checkVatRateValid verifies every stated rate belongs to the closed set of
// rates recognized by law. An impossible rate is INVALID regardless of
// amount class.
func (s *Suite) checkVatRateValid(f *domain.ExtractedFields, required bool) domain.ValidationCheck {
	var rates []decimal.Decimal
	if f.VatRate != nil {
		rates = append(rates, *f.VatRate)
	}
	for _, entry := range f.VatBreakdown {
		rates = append(rates, entry.Rate)
	}
	if len(rates) == 0 {
		return check(domain.RuleVatRateValid, domain.StatusValid, "no VAT rate stated", required)
	}
	for _, rate := range rates {
		if !s.isLegalRate(rate) {
			return check(domain.RuleVatRateValid, domain.StatusInvalid,
				fmt.Sprintf("VAT rate %s%% is not a legally recognized rate", rate), required)
		}
	}
	return check(domain.RuleVatRateValid, domain.StatusValid, "", required)
}

func (s *Suite) isLegalRate(rate decimal.Decimal) bool {
	for _, legal := range s.legalRates {
		if rate.Equal(legal) {
			return true
		}
	}
	return false
}
