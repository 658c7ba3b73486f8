package mapping

import (
	"regexp"
	"strings"
	"unicode"
)

// canonicalRule rewrites any disease name matching the pattern to a single
// canonical form.  Rules are tried in order; the dotted-abbreviation patterns
// must precede the spelled-out ones.
type canonicalRule struct {
	pattern   *regexp.Regexp
	canonical string
}

var canonicalRules = []canonicalRule{
	{regexp.MustCompile(`p\.?c\.?o\.?d\.?`), "PCOD"},
	{regexp.MustCompile(`p\.?c\.?o\.?s\.?`), "PCOS"},
	{regexp.MustCompile(`polycystic ovarian syndrome`), "PCOS"},
	{regexp.MustCompile(`polycystic ovary syndrome`), "PCOS"},
	{regexp.MustCompile(`diabetes mellitus`), "Diabetes"},
	{regexp.MustCompile(`hypertension`), "Hypertension"},
	{regexp.MustCompile(`asthma`), "Asthma"},
	{regexp.MustCompile(`hiv`), "HIV"},
	{regexp.MustCompile(`aids`), "HIV"},
	{regexp.MustCompile(`cancer`), "Cancer"},
	{regexp.MustCompile(`fever`), "Fever"},
	{regexp.MustCompile(`migraine`), "Migraine"},
	{regexp.MustCompile(`arthritis`), "Arthritis"},
	{regexp.MustCompile(`acne`), "Acne"},
	{regexp.MustCompile(`depression`), "Depression"},
	{regexp.MustCompile(`anxiety`), "Anxiety"},
}

// CanonicalDiseaseName maps free-text disease names from provider feeds onto
// the canonical vocabulary used for storage and querying.  Names outside the
// rule set are title-cased as-is.  Empty input stays empty.
func CanonicalDiseaseName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, rule := range canonicalRules {
		if rule.pattern.MatchString(lower) {
			return rule.canonical
		}
	}
	return titleWords(trimmed)
}

// titleWords upper-cases every letter that follows a non-letter, including
// apostrophes and hyphens ("crohn's" becomes "Crohn'S").  This mirrors how
// the seed data was historically cased, so stored labels stay comparable.
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			inWord = false
			b.WriteRune(r)
		case inWord:
			b.WriteRune(unicode.ToLower(r))
		default:
			inWord = true
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
