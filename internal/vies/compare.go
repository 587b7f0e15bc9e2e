package vies

import "strings"

// legalFormSuffixes are the company legal-form markers stripped before name
// comparison. Registry entries and extracted names routinely disagree on
// these while naming the same entity.
var legalFormSuffixes = []string{
	"gesellschaft m.b.h.",
	"gesellschaft mbh",
	"ges.m.b.h.",
	"gesmbh",
	"gmbh & co kg",
	"gmbh & co. kg",
	"gmbh",
	"aktiengesellschaft",
	"ag",
	"kg",
	"og",
	"e.u.",
	"eu",
	"e.gen.",
	"se",
	"ltd.",
	"ltd",
	"limited",
	"s.r.o.",
	"sro",
	"s.a.",
	"sa",
	"sarl",
	"s.r.l.",
	"srl",
	"bv",
	"b.v.",
	"nv",
	"n.v.",
	"oy",
	"ab",
	"sp. z o.o.",
	"kft",
	"d.o.o.",
}

// NormalizeCompanyName lower-cases the name, strips known legal-form
// suffixes, and removes everything non-alphanumeric.
func NormalizeCompanyName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	for changed := true; changed; {
		changed = false
		for _, suffix := range legalFormSuffixes {
			// Word boundary only, so "alphalab" does not lose its "ab".
			if strings.HasSuffix(s, " "+suffix) {
				s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
				s = strings.TrimRight(s, ",.- ")
				changed = true
			}
		}
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CompareCompanyNames scores the similarity of two company names in [0,1]:
// exact match after normalization is 1.0, substring containment 0.85,
// otherwise the Jaccard ratio of the two names' character sets. Empty input
// scores 0.
func CompareCompanyNames(a, b string) float64 {
	na, nb := NormalizeCompanyName(a), NormalizeCompanyName(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.85
	}
	return jaccard(na, nb)
}

func jaccard(a, b string) float64 {
	setA := charSet(a)
	setB := charSet(b)
	intersection := 0
	for r := range setA {
		if setB[r] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func charSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
