package identifier

import "regexp"

// Postal-code shapes for the country heuristic. These are cross-check
// signals only, never ground truth: several countries share four- or
// five-digit codes, so the address country field always wins when present.
var postalShapes = []struct {
	country string
	pattern *regexp.Regexp
}{
	{"NL", regexp.MustCompile(`^\d{4}\s?[A-Z]{2}$`)},
	{"PL", regexp.MustCompile(`^\d{2}-\d{3}$`)},
	{"CZ", regexp.MustCompile(`^\d{3}\s\d{2}$`)},
	{"PT", regexp.MustCompile(`^\d{4}-\d{3}$`)},
	{"GB", regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z0-9]?\s?\d[A-Z]{2}$`)},
	{"AT", regexp.MustCompile(`^\d{4}$`)},
	{"DE", regexp.MustCompile(`^\d{5}$`)},
}

// Countries sharing the plain four- and five-digit shapes. Matching one of
// these shapes supports, never contradicts, a claim of any listed country.
var fourDigitCountries = map[string]bool{
	"AT": true, "BE": true, "BG": true, "CH": true, "DK": true, "HU": true,
	"LU": true, "SI": true, "NO": true, "LI": true,
}

var fiveDigitCountries = map[string]bool{
	"DE": true, "ES": true, "FI": true, "FR": true, "HR": true, "IT": true,
	"EE": true, "GR": true, "LT": true, "SE": true, "SK": true, "CZ": true,
}

var (
	fourDigits = regexp.MustCompile(`^\d{4}$`)
	fiveDigits = regexp.MustCompile(`^\d{5}$`)
)

// CountryFromPostalCode infers a plausible country from the postal code's
// shape, biased toward the reference country when the shape is ambiguous.
// ok is false when the code matches no known shape.
func CountryFromPostalCode(postalCode, referenceCountry string) (string, bool) {
	if postalCode == "" {
		return "", false
	}

	// Ambiguous digit-only shapes defer to the reference country.
	if fourDigits.MatchString(postalCode) {
		if fourDigitCountries[referenceCountry] {
			return referenceCountry, true
		}
		return "AT", true
	}
	if fiveDigits.MatchString(postalCode) {
		if fiveDigitCountries[referenceCountry] {
			return referenceCountry, true
		}
		return "DE", true
	}

	for _, shape := range postalShapes {
		if shape.pattern.MatchString(postalCode) {
			return shape.country, true
		}
	}
	return "", false
}

// PostalCodeAgrees reports whether the postal code is compatible with the
// claimed country. Unknown shapes are treated as compatible, since the
// heuristic must never overrule real data.
func PostalCodeAgrees(postalCode, country string) bool {
	inferred, ok := CountryFromPostalCode(postalCode, country)
	if !ok {
		return true
	}
	return inferred == country
}
