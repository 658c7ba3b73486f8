package enrich

import "strings"

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// suffixRule infers a pharmacological class from a drug name fragment.
type suffixRule struct {
	// suffix matches only at the end of the name; fragments match anywhere.
	suffix    string
	fragments []string
	minLen    int
	uses      []string
}

// Class inference for drugs outside the curated dictionary, based on standard
// pharmacological naming conventions (INN stems).  Order matters: the first
// matching rule wins.
var suffixRules = []suffixRule{
	{suffix: "olol", minLen: 5, uses: []string{"Hypertension", "Angina pectoris", "Heart failure"}},
	{suffix: "pril", minLen: 5, uses: []string{"Hypertension", "Heart failure", "Diabetic nephropathy"}},
	{suffix: "artan", minLen: 6, uses: []string{"Hypertension", "Heart failure", "Stroke prevention"}},
	{suffix: "dipine", minLen: 7, uses: []string{"Hypertension", "Angina pectoris", "Arrhythmias"}},
	{fragments: []string{"glipizide", "glyburide", "glimepiride", "tolbutamide"},
		uses: []string{"Type 2 diabetes mellitus", "Blood glucose control"}},
	{suffix: "glitazone", uses: []string{"Type 2 diabetes mellitus", "Insulin sensitization"}},
	{suffix: "gliptin", uses: []string{"Type 2 diabetes mellitus", "Glycemic control"}},
	{suffix: "gliflozin", uses: []string{"Type 2 diabetes mellitus", "Heart failure", "Chronic kidney disease"}},
	{fragments: []string{"glutide", "tide"}, uses: []string{"Type 2 diabetes mellitus", "Weight management"}},
	{fragments: []string{"cillin", "penicillin"},
		uses: []string{"Bacterial infections", "Respiratory tract infections", "Skin infections"}},
	{fragments: []string{"ceph", "cef"},
		uses: []string{"Bacterial infections", "Urinary tract infections", "Skin infections"}},
	{fragments: []string{"floxacin"},
		uses: []string{"Bacterial infections", "Urinary tract infections", "Respiratory tract infections"}},
	{fragments: []string{"mycin", "ithromycin"},
		uses: []string{"Bacterial infections", "Respiratory tract infections", "Skin infections"}},
	{fragments: []string{"cycline"}, uses: []string{"Bacterial infections", "Acne", "Periodontal disease"}},
	{fragments: []string{"oxetine", "opram", "alopram"}, uses: []string{"Depression", "Anxiety disorders", "OCD"}},
	{fragments: []string{"azepam", "azolam", "zepam"},
		uses: []string{"Anxiety", "Insomnia", "Seizures", "Muscle relaxation"}},
	{fragments: []string{"codone", "phine", "morphine", "fentanyl"},
		uses: []string{"Pain relief", "Cough suppression", "Diarrhea"}},
}

func (r suffixRule) matches(name string) bool {
	if r.suffix != "" {
		return len(name) >= r.minLen && strings.HasSuffix(name, r.suffix)
	}
	for _, f := range r.fragments {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}

// AlternativeUses resolves the known uses for a drug name against a curated
// uses table: exact match, then partial match, then INN stem inference.  An
// empty result means the drug could not be placed in any class; callers must
// not substitute generic uses.
func AlternativeUses(drugUses map[string][]string, drugName string) []string {
	name := normalizeName(drugName)
	if uses, ok := drugUses[name]; ok {
		return uses
	}
	for key, uses := range drugUses {
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return uses
		}
	}
	for _, rule := range suffixRules {
		if rule.matches(name) {
			return rule.uses
		}
	}
	return nil
}
