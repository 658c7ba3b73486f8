package enrich

import (
	"strings"
	"unicode"
)

const maxMarketNames = 10

// Synonym fragments that mark a name as a chemical descriptor rather than a
// trade name.
var chemicalPatterns = []string{
	"acid", "acetate", "acetyl", "amine", "amide", "anilide", "benzoic",
	"butanoic", "carboxylic", "chloride", "compound", "derivative",
	"ester", "ether", "halide", "hydrate", "hydro", "hydroxy",
	"methyl", "nitro", "oxide", "phenyl", "propanoic", "sodium",
	"sulfate", "sulfide", "sulfo", "thio", "toluidine", "yl",
}

var dosageWords = []string{"mg", "ml", "tablet", "capsule", "oral", "injection", "solution", "suspension"}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

// FilterMarketNames extracts plausible trade names from a PubChem synonym
// list.  Synonyms that read like chemistry are dropped: anything with a
// chemical fragment, a digit, a hyphen, bracketing parentheses, more than
// four words, or a dosage word.  Trade names carry at least one capital
// letter and run 2 to 30 characters.  Results keep first-seen order, capped
// at ten.
func FilterMarketNames(drugName string, synonyms []string) []string {
	drugLower := normalizeName(drugName)
	seen := make(map[string]struct{}, maxMarketNames)
	var names []string

	for _, synonym := range synonyms {
		synonym = strings.TrimSpace(synonym)
		lower := strings.ToLower(synonym)

		if lower == drugLower {
			continue
		}
		if containsAny(lower, chemicalPatterns) ||
			hasDigit(synonym) ||
			strings.Contains(synonym, "-") ||
			strings.HasPrefix(synonym, "(") || strings.HasSuffix(synonym, ")") ||
			len(strings.Fields(synonym)) > 4 {
			continue
		}
		if containsAny(lower, dosageWords) {
			continue
		}
		if !hasUpper(synonym) {
			continue
		}
		if len(synonym) < 2 || len(synonym) > 30 {
			continue
		}
		if _, dup := seen[synonym]; dup {
			continue
		}
		seen[synonym] = struct{}{}
		names = append(names, synonym)
		if len(names) == maxMarketNames {
			break
		}
	}
	return names
}

// BrandsFromConcepts extracts brand names from RxNorm branded-product concept
// names, which follow the "ingredient strength form [Brand]" pattern.  The
// part before the bracket must be longer than the plain drug name and free of
// dosage words to count as a brand.
func BrandsFromConcepts(drugName string, concepts []string) []string {
	seen := make(map[string]struct{}, maxMarketNames)
	var names []string

	for _, concept := range concepts {
		concept = strings.TrimSpace(concept)
		if concept == "" || !strings.Contains(concept, "[") {
			continue
		}
		brand := strings.TrimSpace(concept[:strings.Index(concept, "[")])
		if len(brand) <= len(drugName) {
			continue
		}
		if containsAny(strings.ToLower(brand), []string{"mg", "ml", "tablet", "oral"}) {
			continue
		}
		if _, dup := seen[brand]; dup {
			continue
		}
		seen[brand] = struct{}{}
		names = append(names, brand)
		if len(names) == maxMarketNames {
			break
		}
	}
	return names
}
