package identifier

import (
	"regexp"
	"strings"
)

// uidPatterns maps each known UID prefix to the syntax of the remainder after
// the prefix. The keys are the 27 national prefixes plus the two supranational
// pseudo-prefixes: EU (one-stop-shop registrations) and XI (Northern Ireland
// post-exit protocol). An unknown prefix is always syntactically invalid.
var uidPatterns = map[string]*regexp.Regexp{
	"AT": regexp.MustCompile(`^U\d{8}$`),
	"BE": regexp.MustCompile(`^[01]\d{9}$`),
	"BG": regexp.MustCompile(`^\d{9,10}$`),
	"CY": regexp.MustCompile(`^\d{8}[A-Z]$`),
	"CZ": regexp.MustCompile(`^\d{8,10}$`),
	"DE": regexp.MustCompile(`^\d{9}$`),
	"DK": regexp.MustCompile(`^\d{8}$`),
	"EE": regexp.MustCompile(`^\d{9}$`),
	"EL": regexp.MustCompile(`^\d{9}$`),
	"ES": regexp.MustCompile(`^[A-Z0-9]\d{7}[A-Z0-9]$`),
	"FI": regexp.MustCompile(`^\d{8}$`),
	"FR": regexp.MustCompile(`^[A-HJ-NP-Z0-9]{2}\d{9}$`),
	"HR": regexp.MustCompile(`^\d{11}$`),
	"HU": regexp.MustCompile(`^\d{8}$`),
	"IE": regexp.MustCompile(`^(\d{7}[A-W][A-IW]?|\d[A-Z0-9+*]\d{5}[A-W])$`),
	"IT": regexp.MustCompile(`^\d{11}$`),
	"LT": regexp.MustCompile(`^(\d{9}|\d{12})$`),
	"LU": regexp.MustCompile(`^\d{8}$`),
	"LV": regexp.MustCompile(`^\d{11}$`),
	"MT": regexp.MustCompile(`^\d{8}$`),
	"NL": regexp.MustCompile(`^\d{9}B\d{2}$`),
	"PL": regexp.MustCompile(`^\d{10}$`),
	"PT": regexp.MustCompile(`^\d{9}$`),
	"RO": regexp.MustCompile(`^\d{2,10}$`),
	"SE": regexp.MustCompile(`^\d{10}01$`),
	"SI": regexp.MustCompile(`^\d{8}$`),
	"SK": regexp.MustCompile(`^\d{10}$`),
	"EU": regexp.MustCompile(`^\d{9}$`),
	"XI": regexp.MustCompile(`^(\d{9}|\d{12}|GD\d{3}|HA\d{3})$`),
}

// NormalizeUID strips spaces, dots, and dashes and upper-cases the input.
func NormalizeUID(uid string) string {
	s := strings.ToUpper(uid)
	for _, cut := range []string{" ", ".", "-"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}

// SplitUID splits a normalized UID into prefix and number. ok is false when
// the input is too short to carry a prefix.
func SplitUID(uid string) (prefix, number string, ok bool) {
	s := NormalizeUID(uid)
	if len(s) < 3 {
		return "", "", false
	}
	return s[:2], s[2:], true
}

// CheckUIDSyntax reports whether uid is a syntactically valid VAT
// identification number: a known prefix whose remainder matches that
// country's pattern.
func CheckUIDSyntax(uid string) bool {
	prefix, number, ok := SplitUID(uid)
	if !ok {
		return false
	}
	pattern, known := uidPatterns[prefix]
	if !known {
		return false
	}
	return pattern.MatchString(number)
}

// UIDCountry returns the ISO country implied by the UID prefix, mapping the
// pseudo-prefixes to their issuing jurisdiction (EL→GR, XI→GB). ok is false
// for unknown prefixes.
func UIDCountry(uid string) (string, bool) {
	prefix, _, ok := SplitUID(uid)
	if !ok {
		return "", false
	}
	if _, known := uidPatterns[prefix]; !known {
		return "", false
	}
	switch prefix {
	case "EL":
		return "GR", true
	case "XI":
		return "GB", true
	default:
		return prefix, true
	}
}
