package catalog

import "strings"

// Pattern is one entry in the merchant pattern table. Match is the uppercase
// text tested against descriptions. Entries with ExtractVendor set are
// payment-processor prefixes: the real vendor name follows the prefix and is
// pulled out with ExtractVendor.
type Pattern struct {
	Match          string
	DisplayName    string
	Category       string
	IsSubscription bool
	ExtractVendor  bool
}

// Match finds the pattern for a raw description. Prefix matches are tried
// over the whole table before substring matches, and within each pass the
// first entry in declaration order wins. Table order is a contract.
func Match(description string) (Pattern, bool) {
	desc := strings.ToUpper(strings.TrimSpace(description))
	if desc == "" {
		return Pattern{}, false
	}

	for _, p := range patterns {
		if strings.HasPrefix(desc, p.Match) {
			return p, true
		}
	}
	for _, p := range patterns {
		if strings.Contains(desc, p.Match) {
			return p, true
		}
	}
	return Pattern{}, false
}

// legalSuffixes are trailing legal-entity tokens stripped from extracted
// vendor names.
var legalSuffixes = []string{"INC", "LLC", "LTD", "CORP", "CO", "PTY", "PLC"}

// ExtractVendor pulls the vendor text that follows a processor prefix.
// "PAYPAL *SPOTIFY AB" with the PAYPAL pattern yields "SPOTIFY AB" minus the
// legal suffix. Returns "" when nothing usable follows the prefix.
func ExtractVendor(description string, p Pattern) string {
	desc := strings.ToUpper(strings.TrimSpace(description))
	idx := strings.Index(desc, p.Match)
	if idx < 0 {
		return ""
	}

	rest := desc[idx+len(p.Match):]
	rest = strings.TrimLeft(rest, " *-:#/.")
	if rest == "" {
		return ""
	}

	words := strings.Fields(rest)
	for len(words) > 0 {
		last := strings.Trim(words[len(words)-1], ".,")
		if !isLegalSuffix(last) {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func isLegalSuffix(word string) bool {
	for _, s := range legalSuffixes {
		if word == s {
			return true
		}
	}
	return false
}

// Entries returns the pattern table in declaration order. Callers must not
// mutate it.
func Entries() []Pattern { return patterns }

// Size returns the number of catalog entries.
func Size() int { return len(patterns) }
